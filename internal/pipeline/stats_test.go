package pipeline

import (
	"math/rand"
	"testing"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformFrame(r, g, b uint8) entity.Frame {
	pix := make([]uint8, entity.FrameSize*entity.FrameSize*entity.FrameChannels)
	for i := 0; i < len(pix); i += 3 {
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
	}
	return entity.NewFrame(pix)
}

func randomFrame(seed int64) entity.Frame {
	rng := rand.New(rand.NewSource(seed))
	pix := make([]uint8, entity.FrameSize*entity.FrameSize*entity.FrameChannels)
	rng.Read(pix)
	return entity.NewFrame(pix)
}

func TestFrameStatisticsUniformFrame(t *testing.T) {
	stats := FrameStatistics(uniformFrame(100, 100, 100))
	require.Len(t, stats, StatWidth)

	expected := []float32{
		100, 100, 100, // channel means
		0, 0, 0, // channel std-devs
		100, 0, 0, // brightness, contrast, edge density
		100, 100, 100, // channel minima
		100, 100, // R and G maxima only
	}
	for i := range expected {
		assert.InDelta(t, expected[i], stats[i], 1e-5, "stat %d", i)
	}
}

func TestFrameStatisticsHalfFrame(t *testing.T) {
	// Left half black, right half 90 on all channels: one vertical
	// edge at the midline.
	pix := make([]uint8, entity.FrameSize*entity.FrameSize*entity.FrameChannels)
	for y := 0; y < entity.FrameSize; y++ {
		for x := entity.FrameSize / 2; x < entity.FrameSize; x++ {
			i := (y*entity.FrameSize + x) * 3
			pix[i], pix[i+1], pix[i+2] = 90, 90, 90
		}
	}
	stats := FrameStatistics(entity.NewFrame(pix))

	assert.InDelta(t, 45, stats[0], 1e-4)  // meanR
	assert.InDelta(t, 45, stats[3], 1e-4)  // stdR
	assert.InDelta(t, 45, stats[6], 1e-4)  // brightness
	assert.InDelta(t, 45, stats[7], 1e-4)  // contrast
	assert.InDelta(t, 90.0/entity.FrameSize, stats[8], 1e-5) // edge density
	assert.InDelta(t, 0, stats[9], 1e-5)   // minR
	assert.InDelta(t, 90, stats[12], 1e-5) // maxR
}

func TestFrameStatisticsOrderAndDroppedBlueMax(t *testing.T) {
	// One hot pixel per channel so each extreme is distinct.
	pix := make([]uint8, entity.FrameSize*entity.FrameSize*entity.FrameChannels)
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = 50, 60, 70
	}
	pix[0] = 110  // max R
	pix[4] = 120  // max G (pixel 1)
	pix[8] = 255  // max B (pixel 2), must not appear in the output
	stats := FrameStatistics(entity.NewFrame(pix))

	require.Len(t, stats, StatWidth)
	assert.Equal(t, float32(110), stats[12])
	assert.Equal(t, float32(120), stats[13])
	for _, v := range stats {
		assert.NotEqual(t, float32(255), v)
	}
}

func TestFrameStatisticsDeterministic(t *testing.T) {
	frame := randomFrame(42)
	first := FrameStatistics(frame)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, FrameStatistics(frame))
	}
}
