package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/port"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/feedback"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/metrics"
	"go.uber.org/zap"
)

// GenerateAudioUseCase turns a prediction into a coaching message with
// synthesized speech. Audio bytes come from the TTS collaborator;
// base64 encoding for transport is done here.
type GenerateAudioUseCase struct {
	synthesizer port.SpeechSynthesizer
	picker      *feedback.Picker
	voiceID     string
	logger      *zap.Logger
}

func NewGenerateAudioUseCase(
	synthesizer port.SpeechSynthesizer,
	picker *feedback.Picker,
	voiceID string,
	logger *zap.Logger,
) *GenerateAudioUseCase {
	return &GenerateAudioUseCase{
		synthesizer: synthesizer,
		picker:      picker,
		voiceID:     voiceID,
		logger:      logger,
	}
}

func (uc *GenerateAudioUseCase) Execute(ctx context.Context, label string, confidence float64) (*entity.AudioFeedback, error) {
	message := uc.picker.Message(label, confidence)

	start := time.Now()
	audio, err := uc.synthesizer.Synthesize(ctx, message, uc.voiceID)
	if err != nil {
		metrics.TTSRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("generate audio: %w", err)
	}
	metrics.TTSRequestsTotal.WithLabelValues("ok").Inc()

	uc.logger.Info("audio feedback generated",
		zap.String("label", label),
		zap.Int("audio_bytes", len(audio)),
		zap.Duration("tts_duration", time.Since(start)),
	)

	return &entity.AudioFeedback{
		Message:     message,
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
	}, nil
}
