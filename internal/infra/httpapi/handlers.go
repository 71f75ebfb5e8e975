package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ShindeShwetaK/Pitch-Perfect/internal/domain/entity"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/infra/video"
	"github.com/ShindeShwetaK/Pitch-Perfect/internal/pipeline"
	"go.uber.org/zap"
)

// Accepted upload container formats. Anything else is rejected before
// any processing happens.
var allowedExtensions = map[string]bool{
	".mp4": true,
	".avi": true,
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	log := requestLogger(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("video")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no video file provided; use 'video' as the form field name")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		writeError(w, http.StatusBadRequest, "invalid file format; allowed formats: .mp4, .avi")
		return
	}

	tempPath, cleanup, err := s.saveUpload(file, ext)
	if err != nil {
		log.Error("failed to store upload", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to store uploaded video")
		return
	}
	defer cleanup()

	log.Info("video received",
		zap.String("filename", header.Filename),
		zap.Int64("size_bytes", header.Size),
	)

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	result, err := s.classify.ClassifyVideo(ctx, tempPath)
	if err != nil {
		s.writePipelineError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type liveRequest struct {
	Frames []string `json:"frames"`
}

func (s *Server) handlePredictLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	log := requestLogger(r.Context())

	var req liveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Frames) == 0 {
		writeError(w, http.StatusBadRequest, "at least one frame is required")
		return
	}

	frames := make([]entity.Frame, 0, len(req.Frames))
	for i, encoded := range req.Frames {
		frame, err := video.FrameFromBase64(encoded)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode frame %d: %v", i+1, err))
			return
		}
		frames = append(frames, frame)
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	result, err := s.classify.ClassifyFrames(ctx, frames)
	if err != nil {
		s.writePipelineError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type audioRequest struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
}

func (s *Server) handleGenerateAudio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	log := requestLogger(r.Context())

	var req audioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !entity.ValidLabel(req.Prediction) {
		writeError(w, http.StatusBadRequest, "prediction must be either 'High' or 'Not High'")
		return
	}
	if req.Confidence < 0 || req.Confidence > 1 {
		writeError(w, http.StatusBadRequest, "confidence must be between 0.0 and 1.0")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	result, err := s.audio.Execute(ctx, req.Prediction, req.Confidence)
	if err != nil {
		log.Error("audio generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate audio")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// saveUpload copies the uploaded video to a temp file that is removed
// by cleanup on every path.
func (s *Server) saveUpload(src io.Reader, ext string) (string, func(), error) {
	tmp, err := os.CreateTemp(s.cfg.TempDir, "upload-*"+ext)
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}

	cleanup := func() { os.Remove(tmp.Name()) }
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), cleanup, nil
}

// writePipelineError maps the error taxonomy to HTTP statuses:
// unreadable input is the caller's fault, everything else is an
// inference-pipeline failure.
func (s *Server) writePipelineError(w http.ResponseWriter, log *zap.Logger, err error) {
	if errors.Is(err, pipeline.ErrUnreadableSource) || errors.Is(err, pipeline.ErrNoFrames) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("video processing error: %v", err))
		return
	}
	log.Error("inference pipeline failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, fmt.Sprintf("inference error: %v", err))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
