package onnx

import (
	"context"
	"fmt"
	"sync"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/pipeline"
)

// ImageNet channel statistics the backbone was exported with.
var (
	channelMean = [3]float32{0.485, 0.456, 0.406}
	channelStd  = [3]float32{0.229, 0.224, 0.225}
)

// Embedder produces one 1280-wide embedding per frame from the frozen
// EfficientNet-B0 backbone with global average pooling. The input
// tensor shape is fixed at export time to one full sequence batch:
// [seqLen, 3, 224, 224] in NCHW order.
type Embedder struct {
	*session
	mu    sync.Mutex
	batch int
}

func NewEmbedder(modelPath, metadataPath string) (*Embedder, error) {
	meta, err := loadMetadata(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("embedder metadata: %w", err)
	}
	if len(meta.InputShape) != 4 || len(meta.OutputShape) != 2 {
		return nil, fmt.Errorf("embedder metadata has input rank %d and output rank %d, want 4 and 2",
			len(meta.InputShape), len(meta.OutputShape))
	}
	if meta.OutputShape[1] != pipeline.EmbeddingWidth {
		return nil, fmt.Errorf("embedder produces %d-wide embeddings, pipeline expects %d",
			meta.OutputShape[1], pipeline.EmbeddingWidth)
	}

	sess, err := newSession(modelPath, meta)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}

	return &Embedder{session: sess, batch: int(meta.InputShape[0])}, nil
}

// EmbedFrames runs the backbone over one full batch of frames. The
// backbone's documented preprocessing (scale to [0,1], then ImageNet
// channel centering) is applied here; callers pass original pixels.
func (e *Embedder) EmbedFrames(_ context.Context, frames []entity.Frame) ([][]float32, error) {
	if len(frames) != e.batch {
		return nil, fmt.Errorf("embedder expects batches of %d frames, got %d", e.batch, len(frames))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	const plane = entity.FrameSize * entity.FrameSize
	data := e.input.GetData()
	for i, f := range frames {
		base := i * entity.FrameChannels * plane
		for p := 0; p < plane; p++ {
			for c := 0; c < entity.FrameChannels; c++ {
				v := float32(f.Pix[p*entity.FrameChannels+c]) / 255
				data[base+c*plane+p] = (v - channelMean[c]) / channelStd[c]
			}
		}
	}

	if err := e.sess.Run(); err != nil {
		return nil, fmt.Errorf("embedder inference: %w", err)
	}

	out := e.output.GetData()
	embeddings := make([][]float32, e.batch)
	for i := range embeddings {
		row := make([]float32, pipeline.EmbeddingWidth)
		copy(row, out[i*pipeline.EmbeddingWidth:(i+1)*pipeline.EmbeddingWidth])
		embeddings[i] = row
	}
	return embeddings, nil
}

func (e *Embedder) Close() {
	e.close()
}
