package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/user/site-analyzer/internal/delivery/http/request"
	"github.com/user/site-analyzer/internal/delivery/http/response"
	"github.com/user/site-analyzer/internal/entity"
	"github.com/user/site-analyzer/pkg/logger"
	"github.com/user/site-analyzer/pkg/utils"
)

const maxRequestBodyBytes = 1 << 20

// ReportService is the pipeline as seen by the HTTP layer.
type ReportService interface {
	Process(ctx context.Context, url string) *entity.ExtractionRecord
	Analyze(rec *entity.ExtractionRecord) entity.FindingsReport
}

type Handler struct {
	service ReportService
	logger  *zap.Logger
}

func NewHandler(service ReportService, l *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger.OrNop(l),
	}
}

// HandleExtract fetches and extracts the requested URL. A record whose title
// carries the error marker is returned with 400.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	targetURL, ok := h.decodeURL(w, r)
	if !ok {
		return
	}

	rec := h.service.Process(r.Context(), targetURL)
	if strings.HasPrefix(rec.TitleOrEmpty(), entity.ErrorMarkerPrefix) {
		h.writeJSON(w, http.StatusBadRequest, rec)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

// HandleAnalyze runs the heuristic analysis on a posted ExtractionRecord.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var rec entity.ExtractionRecord
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&rec); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if rec.IsFailed() {
		h.logger.Warn("analysis requested for a record with a prior extraction error",
			zap.String("url", rec.RequestedURL))
	}
	h.writeJSON(w, http.StatusOK, h.service.Analyze(&rec))
}

// HandleReport extracts and analyzes the requested URL in one call.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	targetURL, ok := h.decodeURL(w, r)
	if !ok {
		return
	}

	rec := h.service.Process(r.Context(), targetURL)
	h.writeJSON(w, http.StatusOK, response.ReportResponse{
		Extraction: rec,
		Analysis:   h.service.Analyze(rec),
	})
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}

func (h *Handler) decodeURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req request.ExtractRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return "", false
	}

	targetURL := strings.TrimSpace(req.URL)
	if !utils.IsHTTPURL(targetURL) {
		h.writeJSONError(w, "Invalid URL format", http.StatusBadRequest)
		return "", false
	}
	return targetURL, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, response.ErrorResponse{Error: message})
}
