package httpapi

import (
	"net/http"
	"time"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/metrics"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/usecase"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ServerConfig struct {
	TempDir        string
	MaxUploadBytes int64
	RequestTimeout time.Duration
}

// Server is the inference API: thin glue over the classification and
// audio use cases. It enforces the per-request timeout at this
// boundary; the pipeline itself has no internal cancellation.
type Server struct {
	classify *usecase.ClassifyShotUseCase
	audio    *usecase.GenerateAudioUseCase
	logger   *zap.Logger
	cfg      ServerConfig
}

func NewServer(
	classify *usecase.ClassifyShotUseCase,
	audio *usecase.GenerateAudioUseCase,
	cfg ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{classify: classify, audio: audio, logger: logger, cfg: cfg}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.withCommon(s.handleHealth))
	mux.HandleFunc("/predict", s.withCommon(s.handlePredict))
	mux.HandleFunc("/predict-live", s.withCommon(s.handlePredictLive))
	mux.HandleFunc("/generate-audio", s.withCommon(s.handleGenerateAudio))
	return mux
}

// withCommon applies CORS headers, a request ID, request-scoped
// logging, and the active-request gauge to every endpoint.
func (s *Server) withCommon(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		metrics.ActiveRequests.Inc()
		defer metrics.ActiveRequests.Dec()

		log := s.logger.With(
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
		)
		start := time.Now()
		next(w, r.WithContext(withLogger(r.Context(), log)))
		log.Debug("request handled", zap.Duration("duration", time.Since(start)))
	}
}
