package video

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// The sampler shells out to ffprobe and ffmpeg, so the tests point it
// at small shell scripts standing in for both binaries.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func writeFramePNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 80, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, "frame.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestExtractFramesDecodesEverySelectedIndex(t *testing.T) {
	dir := t.TempDir()
	pngPath := writeFramePNG(t, dir)
	ffprobe := writeScript(t, dir, "ffprobe", "echo 16\n")
	ffmpeg := writeScript(t, dir, "ffmpeg", "cat "+pngPath+"\n")

	s := NewSampler(ffmpeg, ffprobe, zap.NewNop())
	frames, err := s.ExtractFrames(context.Background(), "clip.mp4", 8)
	require.NoError(t, err)
	require.Len(t, frames, 8)
	assert.Len(t, frames[0].Pix, entity.FrameSize*entity.FrameSize*entity.FrameChannels)
}

func TestExtractFramesSkipsUndecodableIndices(t *testing.T) {
	dir := t.TempDir()
	pngPath := writeFramePNG(t, dir)
	ffprobe := writeScript(t, dir, "ffprobe", "echo 16\n")
	// With 16 frames and 8 requested, the selected indices are the even
	// numbers 0..14; fail two of them and decode the rest.
	ffmpeg := writeScript(t, dir, "ffmpeg", `case "$*" in
  *"select=eq(n\,4)"*|*"select=eq(n\,10)"*) exit 1 ;;
esac
cat `+pngPath+"\n")

	s := NewSampler(ffmpeg, ffprobe, zap.NewNop())
	frames, err := s.ExtractFrames(context.Background(), "clip.mp4", 8)
	require.NoError(t, err)
	assert.Len(t, frames, 6)
}

func TestExtractFramesShortVideoReturnsAllFrames(t *testing.T) {
	dir := t.TempDir()
	pngPath := writeFramePNG(t, dir)
	ffprobe := writeScript(t, dir, "ffprobe", "echo 3\n")
	ffmpeg := writeScript(t, dir, "ffmpeg", "cat "+pngPath+"\n")

	s := NewSampler(ffmpeg, ffprobe, zap.NewNop())
	frames, err := s.ExtractFrames(context.Background(), "clip.mp4", 8)
	require.NoError(t, err)
	assert.Len(t, frames, 3)
}

func TestExtractFramesAllDecodesFail(t *testing.T) {
	dir := t.TempDir()
	ffprobe := writeScript(t, dir, "ffprobe", "echo 16\n")
	ffmpeg := writeScript(t, dir, "ffmpeg", "exit 1\n")

	s := NewSampler(ffmpeg, ffprobe, zap.NewNop())
	_, err := s.ExtractFrames(context.Background(), "clip.mp4", 8)
	require.ErrorIs(t, err, pipeline.ErrNoFrames)
}

func TestExtractFramesProbeFailure(t *testing.T) {
	dir := t.TempDir()
	ffprobe := writeScript(t, dir, "ffprobe", "exit 1\n")
	ffmpeg := writeScript(t, dir, "ffmpeg", "exit 1\n")

	s := NewSampler(ffmpeg, ffprobe, zap.NewNop())
	_, err := s.ExtractFrames(context.Background(), "missing.mp4", 8)
	require.ErrorIs(t, err, pipeline.ErrUnreadableSource)
}

func TestExtractFramesZeroFrameCount(t *testing.T) {
	dir := t.TempDir()
	ffprobe := writeScript(t, dir, "ffprobe", "echo 0\n")
	ffmpeg := writeScript(t, dir, "ffmpeg", "exit 1\n")

	s := NewSampler(ffmpeg, ffprobe, zap.NewNop())
	_, err := s.ExtractFrames(context.Background(), "empty.mp4", 8)
	require.ErrorIs(t, err, pipeline.ErrUnreadableSource)
}
