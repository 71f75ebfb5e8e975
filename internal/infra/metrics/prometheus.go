package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchperfect_predictions_total",
		Help: "Total number of shot predictions served, by label",
	}, []string{"label"})

	PipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pitchperfect_pipeline_stage_duration_seconds",
		Help:    "Duration of inference pipeline stages",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"stage"})

	FramesDecodedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitchperfect_frames_decoded_total",
		Help: "Total number of video frames decoded across all requests",
	})

	ActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pitchperfect_active_requests",
		Help: "Number of requests currently being processed",
	})

	TTSRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchperfect_tts_requests_total",
		Help: "Total number of text-to-speech synthesis calls, by outcome",
	}, []string{"status"})
)
