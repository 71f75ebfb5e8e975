package usecase

import (
	"context"
	"time"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/port"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/feedback"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/metrics"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/pipeline"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ClassifyShotUseCase runs the full inference pipeline for one
// request: sample frames, assemble the feature sequence, classify,
// and format the response. Processing is synchronous; cancellation is
// the caller's request context.
type ClassifyShotUseCase struct {
	sampler    port.FrameSampler
	assembler  *pipeline.Assembler
	classifier port.SequenceClassifier
	picker     *feedback.Picker
	logger     *zap.Logger
}

func NewClassifyShotUseCase(
	sampler port.FrameSampler,
	assembler *pipeline.Assembler,
	classifier port.SequenceClassifier,
	picker *feedback.Picker,
	logger *zap.Logger,
) *ClassifyShotUseCase {
	return &ClassifyShotUseCase{
		sampler:    sampler,
		assembler:  assembler,
		classifier: classifier,
		picker:     picker,
		logger:     logger,
	}
}

// ClassifyVideo samples frames from an uploaded clip and classifies
// them.
func (uc *ClassifyShotUseCase) ClassifyVideo(ctx context.Context, videoPath string) (*entity.Prediction, error) {
	tracer := otel.Tracer("usecase")
	ctx, span := tracer.Start(ctx, "ClassifyShotUseCase.ClassifyVideo")
	defer span.End()
	span.SetAttributes(attribute.Int("sequence_length", uc.assembler.SequenceLength()))

	exStart := time.Now()
	exCtx, exSpan := tracer.Start(ctx, "extract_frames")
	frames, err := uc.sampler.ExtractFrames(exCtx, videoPath, uc.assembler.SequenceLength())
	exSpan.End()
	if err != nil {
		return nil, err
	}
	metrics.PipelineDuration.WithLabelValues("extract").Observe(time.Since(exStart).Seconds())
	metrics.FramesDecodedTotal.Add(float64(len(frames)))

	return uc.classify(ctx, frames)
}

// ClassifyFrames classifies an already-decoded frame list, as
// delivered by the live endpoint.
func (uc *ClassifyShotUseCase) ClassifyFrames(ctx context.Context, frames []entity.Frame) (*entity.Prediction, error) {
	tracer := otel.Tracer("usecase")
	ctx, span := tracer.Start(ctx, "ClassifyShotUseCase.ClassifyFrames")
	defer span.End()

	metrics.FramesDecodedTotal.Add(float64(len(frames)))
	return uc.classify(ctx, frames)
}

func (uc *ClassifyShotUseCase) classify(ctx context.Context, frames []entity.Frame) (*entity.Prediction, error) {
	tracer := otel.Tracer("usecase")

	asStart := time.Now()
	asCtx, asSpan := tracer.Start(ctx, "assemble_features")
	seq, err := uc.assembler.Assemble(asCtx, frames)
	asSpan.End()
	if err != nil {
		return nil, err
	}
	metrics.PipelineDuration.WithLabelValues("assemble").Observe(time.Since(asStart).Seconds())

	infStart := time.Now()
	infCtx, infSpan := tracer.Start(ctx, "run_classifier")
	probs, err := uc.classifier.Predict(infCtx, seq)
	infSpan.End()
	if err != nil {
		return nil, err
	}
	metrics.PipelineDuration.WithLabelValues("inference").Observe(time.Since(infStart).Seconds())

	label, confidence, err := feedback.Resolve(probs)
	if err != nil {
		return nil, err
	}

	metrics.PredictionsTotal.WithLabelValues(label).Inc()
	uc.logger.Info("shot classified",
		zap.String("label", label),
		zap.Float64("confidence", confidence),
		zap.Int("input_frames", len(frames)),
	)

	return &entity.Prediction{
		Label:      label,
		Confidence: confidence,
		Message:    uc.picker.Message(label, confidence),
	}, nil
}
