package onnx

import (
	"fmt"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/pipeline"
)

// VerifySequenceShapes cross-checks the two loaded models against the
// configured sequence length so a mismatched export fails at startup
// instead of on the first request.
func VerifySequenceShapes(e *Embedder, c *Classifier, sequenceLength int) error {
	if e.batch != sequenceLength {
		return fmt.Errorf("embedder batch size %d does not match configured sequence length %d",
			e.batch, sequenceLength)
	}
	if c.steps != sequenceLength {
		return fmt.Errorf("classifier expects %d steps, configured sequence length is %d",
			c.steps, sequenceLength)
	}
	if c.width != pipeline.FeatureWidth {
		return fmt.Errorf("classifier expects %d-wide features, pipeline produces %d",
			c.width, pipeline.FeatureWidth)
	}
	return nil
}
