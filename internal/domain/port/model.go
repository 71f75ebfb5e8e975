package port

import (
	"context"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
)

// FrameEmbedder produces one fixed-length embedding per frame from a
// pretrained, frozen image backbone. The implementation owns the
// backbone's documented preprocessing; callers pass raw frames.
type FrameEmbedder interface {
	EmbedFrames(ctx context.Context, frames []entity.Frame) ([][]float32, error)
}

// SequenceClassifier maps an assembled feature sequence to raw class
// probabilities: either a 2-class distribution or a single sigmoid
// scalar.
type SequenceClassifier interface {
	Predict(ctx context.Context, seq *entity.FeatureSequence) ([]float32, error)
}
