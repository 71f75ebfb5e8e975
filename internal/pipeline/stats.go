package pipeline

import (
	"math"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
)

// Feature-vector geometry. Each frame contributes EmbeddingWidth CNN
// values followed by StatWidth statistical values.
const (
	EmbeddingWidth = 1280
	StatWidth      = 14
	FeatureWidth   = EmbeddingWidth + StatWidth

	// DefaultSequenceLength is the number of frames the classifier
	// expects per example.
	DefaultSequenceLength = 8
)

// FrameStatistics computes the 14 statistical features of one frame,
// in this fixed order:
//
//	[meanR, meanG, meanB, stdR, stdG, stdB,
//	 brightness, contrast, edgeDensity,
//	 minR, minG, minB, maxR, maxG]
//
// The blue-channel maximum is intentionally dropped: the classifier
// was trained on 14-wide statistics that keep only two of the three
// channel maxima. Adding it back would shift the model's expected
// input distribution.
//
// Statistics are computed from the original 8-bit pixel values, not
// from CNN-preprocessed ones. The function is pure: the same frame
// always yields the identical vector.
func FrameStatistics(f entity.Frame) []float32 {
	const (
		size   = entity.FrameSize
		pixels = size * size
	)

	var sum, sumSq [3]float64
	min := [3]uint8{255, 255, 255}
	var max [3]uint8

	for p := 0; p < pixels; p++ {
		for c := 0; c < 3; c++ {
			v := f.Pix[p*3+c]
			fv := float64(v)
			sum[c] += fv
			sumSq[c] += fv * fv
			if v < min[c] {
				min[c] = v
			}
			if v > max[c] {
				max[c] = v
			}
		}
	}

	var mean, std [3]float64
	for c := 0; c < 3; c++ {
		mean[c] = sum[c] / pixels
		std[c] = math.Sqrt(sumSq[c]/pixels - mean[c]*mean[c])
	}

	// Brightness and contrast are the mean and population standard
	// deviation over all pixels and channels together.
	total := sum[0] + sum[1] + sum[2]
	totalSq := sumSq[0] + sumSq[1] + sumSq[2]
	brightness := total / (3 * pixels)
	contrast := math.Sqrt(totalSq/(3*pixels) - brightness*brightness)

	edge := edgeDensity(f)

	return []float32{
		float32(mean[0]), float32(mean[1]), float32(mean[2]),
		float32(std[0]), float32(std[1]), float32(std[2]),
		float32(brightness), float32(contrast), float32(edge),
		float32(min[0]), float32(min[1]), float32(min[2]),
		float32(max[0]), float32(max[1]),
	}
}

// edgeDensity is the mean absolute horizontal gradient plus the mean
// absolute vertical gradient of the luma approximation (per-pixel mean
// of the three channels). The first row and column are edge-padded so
// both gradient fields cover the full frame; their leading entries are
// therefore zero.
func edgeDensity(f entity.Frame) float64 {
	const size = entity.FrameSize

	luma := func(x, y int) float64 {
		i := (y*size + x) * 3
		return (float64(f.Pix[i]) + float64(f.Pix[i+1]) + float64(f.Pix[i+2])) / 3
	}

	var sumX, sumY float64
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			g := luma(x, y)
			if x > 0 {
				sumX += math.Abs(g - luma(x-1, y))
			}
			if y > 0 {
				sumY += math.Abs(g - luma(x, y-1))
			}
		}
	}

	const pixels = size * size
	return sumX/pixels + sumY/pixels
}
