package pipeline

// SampleIndices selects which frames to decode from a video with
// totalFrames frames. If the video has no more frames than requested,
// every index is selected. Otherwise frameCount indices are spread
// across the full duration as floor(i*totalFrames/frameCount), which
// biases slightly toward earlier frames. The classifier was trained
// on sequences sampled with this exact formula, so it must not be
// replaced with a uniform integer stride.
func SampleIndices(totalFrames, frameCount int) []int {
	if totalFrames <= frameCount {
		indices := make([]int, totalFrames)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	indices := make([]int, frameCount)
	for i := range indices {
		indices[i] = i * totalFrames / frameCount
	}
	return indices
}
