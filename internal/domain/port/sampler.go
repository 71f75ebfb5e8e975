package port

import (
	"context"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
)

// FrameSampler decodes up to frameCount evenly spaced frames from a
// video file, in time order. Implementations may return fewer frames
// than requested when individual frames fail to decode.
type FrameSampler interface {
	ExtractFrames(ctx context.Context, videoPath string, frameCount int) ([]entity.Frame, error)
}
