package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/feedback"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/config"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/elevenlabs"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/httpapi"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/metrics"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/onnx"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/tracing"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/video"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/pipeline"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/usecase"
	"github.com/ShindeShwetaK/Pitch-Perfect/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	log.Info("starting pitchperfect-inference-service")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Tracing (non-fatal if the collector is unavailable)
	tp, err := tracing.InitTracer(ctx, cfg.OTLPEndpoint)
	if err != nil {
		log.Warn("tracing init failed, continuing without tracing", zap.Error(err))
	} else if tp != nil {
		defer tp.Shutdown(ctx)
	}

	fatalOnErr(os.MkdirAll(cfg.TempDir, 0755), "create temp dir")

	// Models are loaded eagerly so a broken model file fails at
	// startup, not on the first request.
	fatalOnErr(onnx.Initialize(), "initialize onnx runtime")
	defer onnx.Destroy()

	embedder, err := onnx.NewEmbedder(cfg.EmbedderModelPath, cfg.EmbedderMetadataPath)
	fatalOnErr(err, "load frame embedder")
	defer embedder.Close()

	classifier, err := onnx.NewClassifier(cfg.ClassifierModelPath, cfg.ClassifierMetadataPath)
	fatalOnErr(err, "load shot classifier")
	defer classifier.Close()

	fatalOnErr(onnx.VerifySequenceShapes(embedder, classifier, cfg.SequenceLength), "model shape check")

	log.Info("models loaded",
		zap.String("embedder", cfg.EmbedderModelPath),
		zap.String("classifier", cfg.ClassifierModelPath),
		zap.Int("sequence_length", cfg.SequenceLength),
	)

	// Infra adapters
	sampler := video.NewSampler(cfg.FFmpegPath, cfg.FFprobePath, log)
	assembler := pipeline.NewAssembler(embedder, cfg.SequenceLength)
	picker := feedback.NewPicker(cfg.MessageSeed)
	synthesizer := elevenlabs.NewClient(elevenlabs.ClientConfig{
		APIKey:             cfg.ElevenLabsAPIKey,
		BaseURL:            cfg.ElevenLabsBaseURL,
		Timeout:            cfg.TTSTimeout,
		VerifyCertificates: cfg.VerifyCertificates,
	}, log)

	// Use cases
	classify := usecase.NewClassifyShotUseCase(sampler, assembler, classifier, picker, log)
	audio := usecase.NewGenerateAudioUseCase(synthesizer, picker, cfg.ElevenLabsVoiceID, log)

	// Metrics server
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, log)

	// Inference API
	api := httpapi.NewServer(classify, audio, httpapi.ServerConfig{
		TempDir:        cfg.TempDir,
		MaxUploadBytes: cfg.MaxUploadBytes,
		RequestTimeout: cfg.RequestTimeout,
	}, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("inference API starting", zap.Int("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("api server error", zap.Error(err))
			cancel()
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("received shutdown signal", zap.String("signal", sig.String()))
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
	metricsSrv.Shutdown(shutdownCtx)

	log.Info("pitchperfect-inference-service stopped")
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}
