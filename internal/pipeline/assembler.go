package pipeline

import (
	"context"
	"fmt"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/port"
)

// Assembler turns a list of raw frames into the fixed-shape feature
// sequence the classifier consumes: 1 x seqLen x FeatureWidth.
type Assembler struct {
	embedder port.FrameEmbedder
	seqLen   int
}

func NewAssembler(embedder port.FrameEmbedder, seqLen int) *Assembler {
	if seqLen <= 0 {
		seqLen = DefaultSequenceLength
	}
	return &Assembler{embedder: embedder, seqLen: seqLen}
}

// SequenceLength returns the fixed number of steps per example.
func (a *Assembler) SequenceLength() int {
	return a.seqLen
}

// Assemble normalizes the frame list to exactly seqLen steps (padding
// by repeating the last frame, or keeping only the most recent seqLen
// frames), embeds the frames, computes per-frame statistics from the
// original pixel values, and concatenates embedding then statistics
// into one FeatureWidth-wide vector per step. Extractor failures
// propagate unchanged; there are no retries.
func (a *Assembler) Assemble(ctx context.Context, frames []entity.Frame) (*entity.FeatureSequence, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	normalized := normalizeLength(frames, a.seqLen)

	embeddings, err := a.embedder.EmbedFrames(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("embed frames: %w", err)
	}
	if len(embeddings) != a.seqLen {
		return nil, fmt.Errorf("embedder returned %d embeddings for %d frames", len(embeddings), a.seqLen)
	}

	data := make([]float32, 0, a.seqLen*FeatureWidth)
	for i, emb := range embeddings {
		if len(emb) != EmbeddingWidth {
			return nil, fmt.Errorf("embedding %d is %d wide, want %d", i, len(emb), EmbeddingWidth)
		}
		data = append(data, emb...)
		data = append(data, FrameStatistics(normalized[i])...)
	}

	return &entity.FeatureSequence{
		Steps: a.seqLen,
		Width: FeatureWidth,
		Data:  data,
	}, nil
}

// normalizeLength pads short sequences by repeating the last frame and
// truncates long ones to the most recent seqLen frames. Interpolation
// is never used.
func normalizeLength(frames []entity.Frame, seqLen int) []entity.Frame {
	switch {
	case len(frames) == seqLen:
		return frames
	case len(frames) > seqLen:
		return frames[len(frames)-seqLen:]
	}

	normalized := make([]entity.Frame, seqLen)
	copy(normalized, frames)
	last := frames[len(frames)-1]
	for i := len(frames); i < seqLen; i++ {
		normalized[i] = last
	}
	return normalized
}
