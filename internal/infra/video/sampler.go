package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/pipeline"
	"go.uber.org/zap"
)

// Sampler decodes evenly spaced frames from a video file using ffprobe
// to count frames and ffmpeg to seek-decode each selected index. Every
// invocation is a short-lived subprocess, so no video handle outlives
// a call on any path.
type Sampler struct {
	ffmpegPath  string
	ffprobePath string
	logger      *zap.Logger
}

func NewSampler(ffmpegPath, ffprobePath string, logger *zap.Logger) *Sampler {
	return &Sampler{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath, logger: logger}
}

// ExtractFrames returns up to frameCount decoded frames in time order.
// A frame whose seek or decode fails is skipped without error; the
// result may therefore be shorter than frameCount. It fails with
// pipeline.ErrUnreadableSource when the source cannot be opened or
// reports zero frames, and with pipeline.ErrNoFrames when every
// selected index failed to decode.
func (s *Sampler) ExtractFrames(ctx context.Context, videoPath string, frameCount int) ([]entity.Frame, error) {
	total, err := s.countFrames(ctx, videoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pipeline.ErrUnreadableSource, err)
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: video has zero frames", pipeline.ErrUnreadableSource)
	}

	indices := pipeline.SampleIndices(total, frameCount)
	frames := make([]entity.Frame, 0, len(indices))
	for _, idx := range indices {
		frame, err := s.decodeFrameAt(ctx, videoPath, idx)
		if err != nil {
			s.logger.Debug("skipping unreadable frame",
				zap.Int("index", idx),
				zap.Error(err),
			)
			continue
		}
		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		return nil, pipeline.ErrNoFrames
	}

	s.logger.Info("frames extracted",
		zap.Int("total_frames", total),
		zap.Int("requested", frameCount),
		zap.Int("decoded", len(frames)),
	)
	return frames, nil
}

func (s *Sampler) countFrames(ctx context.Context, videoPath string) (int, error) {
	cmd := exec.CommandContext(ctx, s.ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-count_packets",
		"-show_entries", "stream=nb_read_packets",
		"-of", "default=noprint_wrappers=1:nokey=1",
		videoPath,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	total, err := strconv.Atoi(strings.TrimSpace(string(output)))
	if err != nil {
		return 0, fmt.Errorf("parse frame count: %w", err)
	}
	return total, nil
}

func (s *Sampler) decodeFrameAt(ctx context.Context, videoPath string, index int) (entity.Frame, error) {
	cmd := exec.CommandContext(ctx, s.ffmpegPath,
		"-v", "error",
		"-i", videoPath,
		"-vf", fmt.Sprintf("select=eq(n\\,%d)", index),
		"-frames:v", "1",
		"-f", "image2",
		"-vcodec", "png",
		"-",
	)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return entity.Frame{}, fmt.Errorf("seek frame %d: %w", index, err)
	}

	img, _, err := image.Decode(&stdout)
	if err != nil {
		return entity.Frame{}, fmt.Errorf("decode frame %d: %w", index, err)
	}
	return FrameFromImage(img), nil
}
