package onnx

import (
	"context"
	"fmt"
	"sync"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
)

// Classifier runs the pretrained sequence model over an assembled
// feature sequence and returns its raw probabilities: [2] softmax or
// [1] sigmoid depending on how the model was exported.
type Classifier struct {
	*session
	mu    sync.Mutex
	steps int
	width int
}

func NewClassifier(modelPath, metadataPath string) (*Classifier, error) {
	meta, err := loadMetadata(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("classifier metadata: %w", err)
	}
	if len(meta.InputShape) != 3 || meta.InputShape[0] != 1 {
		return nil, fmt.Errorf("classifier metadata input shape %v, want [1 steps width]", meta.InputShape)
	}

	sess, err := newSession(modelPath, meta)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	return &Classifier{
		session: sess,
		steps:   int(meta.InputShape[1]),
		width:   int(meta.InputShape[2]),
	}, nil
}

func (c *Classifier) Predict(_ context.Context, seq *entity.FeatureSequence) ([]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data := c.input.GetData()
	if len(seq.Data) != len(data) {
		return nil, fmt.Errorf("feature sequence has %d values, classifier expects %d (%d steps of %d features)",
			len(seq.Data), len(data), c.steps, c.width)
	}
	copy(data, seq.Data)

	if err := c.sess.Run(); err != nil {
		return nil, fmt.Errorf("classifier inference: %w", err)
	}

	out := c.output.GetData()
	probs := make([]float32, len(out))
	copy(probs, out)
	return probs, nil
}

func (c *Classifier) Close() {
	c.close()
}
