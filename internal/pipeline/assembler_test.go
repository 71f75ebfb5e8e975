package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder emits embeddings that are a deterministic function of
// the frame's pixels, so identical frames produce identical rows.
type stubEmbedder struct {
	err error
}

func (s *stubEmbedder) EmbedFrames(_ context.Context, frames []entity.Frame) ([][]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, len(frames))
	for i, f := range frames {
		var sum float32
		for _, p := range f.Pix {
			sum += float32(p)
		}
		row := make([]float32, EmbeddingWidth)
		for j := range row {
			row[j] = sum / float32(j+1)
		}
		out[i] = row
	}
	return out, nil
}

func fillFrame(v uint8) entity.Frame {
	pix := make([]uint8, entity.FrameSize*entity.FrameSize*entity.FrameChannels)
	for i := range pix {
		pix[i] = v
	}
	return entity.NewFrame(pix)
}

func frameList(values ...uint8) []entity.Frame {
	frames := make([]entity.Frame, len(values))
	for i, v := range values {
		frames[i] = fillFrame(v)
	}
	return frames
}

func TestAssembleExactLength(t *testing.T) {
	a := NewAssembler(&stubEmbedder{}, 8)
	seq, err := a.Assemble(context.Background(), frameList(1, 2, 3, 4, 5, 6, 7, 8))
	require.NoError(t, err)

	assert.Equal(t, 8, seq.Steps)
	assert.Equal(t, FeatureWidth, seq.Width)
	assert.Len(t, seq.Data, 8*FeatureWidth)
}

func TestAssemblePadsByRepeatingLastFrame(t *testing.T) {
	a := NewAssembler(&stubEmbedder{}, 8)
	seq, err := a.Assemble(context.Background(), frameList(10, 20, 30))
	require.NoError(t, err)

	require.Len(t, seq.Data, 8*FeatureWidth)
	lastReal := seq.Row(2)
	for i := 3; i < 8; i++ {
		assert.Equal(t, lastReal, seq.Row(i), "padded row %d must be bit-identical to the last real row", i)
	}
	assert.NotEqual(t, seq.Row(0), seq.Row(2))
}

func TestAssembleTruncatesToMostRecentFrames(t *testing.T) {
	a := NewAssembler(&stubEmbedder{}, 8)
	frames := frameList(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	seq, err := a.Assemble(context.Background(), frames)
	require.NoError(t, err)

	// Row 0 must correspond to the 4th input frame (value 4), and the
	// three earliest frames must be gone.
	direct, err := NewAssembler(&stubEmbedder{}, 8).Assemble(context.Background(), frames[3:])
	require.NoError(t, err)
	assert.Equal(t, direct.Data, seq.Data)
}

func TestAssembleRowLayoutIsEmbeddingThenStats(t *testing.T) {
	a := NewAssembler(&stubEmbedder{}, 8)
	frames := frameList(1, 2, 3, 4, 5, 6, 7, 8)
	seq, err := a.Assemble(context.Background(), frames)
	require.NoError(t, err)

	embeddings, err := (&stubEmbedder{}).EmbedFrames(context.Background(), frames)
	require.NoError(t, err)
	for i := 0; i < 8; i++ {
		row := seq.Row(i)
		assert.Equal(t, embeddings[i], row[:EmbeddingWidth])
		assert.Equal(t, FrameStatistics(frames[i]), row[EmbeddingWidth:])
	}
}

func TestAssembleStatsComeFromOriginalPixels(t *testing.T) {
	a := NewAssembler(&stubEmbedder{}, 8)
	seq, err := a.Assemble(context.Background(), frameList(200, 200, 200, 200, 200, 200, 200, 200))
	require.NoError(t, err)

	stats := seq.Row(0)[EmbeddingWidth:]
	assert.InDelta(t, 200, stats[0], 1e-5, "channel mean must reflect raw 8-bit values, not CNN preprocessing")
}

func TestAssembleEmptyInput(t *testing.T) {
	a := NewAssembler(&stubEmbedder{}, 8)
	_, err := a.Assemble(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestAssemblePropagatesEmbedderFailure(t *testing.T) {
	wantErr := errors.New("backbone exploded")
	a := NewAssembler(&stubEmbedder{err: wantErr}, 8)
	_, err := a.Assemble(context.Background(), frameList(1, 2, 3))
	assert.ErrorIs(t, err, wantErr)
}
