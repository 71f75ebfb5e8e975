package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadableSource means the video source could not be opened
	// or reported zero total frames.
	ErrUnreadableSource = errors.New("cannot read video source")

	// ErrNoFrames means every per-frame seek/decode failed.
	ErrNoFrames = errors.New("frame extraction produced zero frames")
)

// OutputShapeError reports a classifier output that is neither a
// 2-class distribution nor a single scalar.
type OutputShapeError struct {
	Got int
}

func (e *OutputShapeError) Error() string {
	return fmt.Sprintf(
		"unexpected model output shape: got %d values, want 1 or 2 (classifier input is %d features per frame)",
		e.Got, FeatureWidth,
	)
}
