package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"dynamocards/internal/concepts"
	"dynamocards/internal/contextutil"
	"dynamocards/internal/service"
)

// maxBodyBytes bounds the request payload.
const maxBodyBytes = 1 << 20

// AnalysisIDHeader carries the analysis id of every successful response.
const AnalysisIDHeader = "X-Analysis-ID"

// AnalyzeHandler handles HTTP requests for video analysis.
type AnalyzeHandler struct {
	analyzeService service.AnalyzeService
	logger         *slog.Logger
}

// NewAnalyzeHandler creates a new AnalyzeHandler.
func NewAnalyzeHandler(analyzeService service.AnalyzeService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeService: analyzeService,
		logger:         slog.Default(),
	}
}

// AnalyzeRequest represents the HTTP request payload for video analysis.
type AnalyzeRequest struct {
	YoutubeLink    string `json:"youtube_link"`
	SampleSize     int    `json:"sample_size,omitempty"`
	IncludeSummary bool   `json:"include_summary,omitempty"`
}

// AnalyzeResponse represents the HTTP response payload for video analysis.
type AnalyzeResponse struct {
	KeyConcepts []concepts.ConceptSet `json:"key_concepts"`
	Summary     string                `json:"summary,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles HTTP requests for video analysis.
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx, h.logger)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AnalyzeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		h.writeError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if err := validateVideoURL(req.YoutubeLink); err != nil {
		logger.WarnContext(ctx, "invalid video link", "youtube_link", req.YoutubeLink, "error", err)
		h.writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Validation error: %s", err.Error()))
		return
	}

	// Convert HTTP request to service request
	svcReq := service.AnalyzeRequest{
		URL:            req.YoutubeLink,
		SampleSize:     req.SampleSize,
		IncludeSummary: req.IncludeSummary,
	}

	// Call service layer
	svcResp, err := h.analyzeService.Analyze(ctx, svcReq)
	if err != nil {
		h.handleServiceError(w, ctx, err, "Failed to analyze video")
		return
	}

	// Convert service response to HTTP response
	resp := AnalyzeResponse{
		KeyConcepts: svcResp.KeyConcepts,
		Summary:     svcResp.Summary,
	}
	if resp.KeyConcepts == nil {
		resp.KeyConcepts = []concepts.ConceptSet{}
	}

	w.Header().Set("Content-Type", "application/json")
	if svcResp.AnalysisID != "" {
		w.Header().Set(AnalysisIDHeader, svcResp.AnalysisID)
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "failed to encode response", "error", err)
		return
	}
}

// validateVideoURL accepts absolute http or https URLs with a host.
func validateVideoURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &service.ValidationError{Field: "youtube_link", Message: "is required"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return &service.ValidationError{Field: "youtube_link", Message: "is not a valid URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &service.ValidationError{Field: "youtube_link", Message: "must use http or https"}
	}
	if u.Hostname() == "" {
		return &service.ValidationError{Field: "youtube_link", Message: "must include a host"}
	}
	return nil
}

// handleServiceError maps service errors to appropriate HTTP status codes and responses.
// Client errors are logged at WARN, everything else at ERROR.
func (h *AnalyzeHandler) handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	status, message := errorStatus(err, defaultMsg)

	logger := contextutil.LoggerFromContext(ctx, h.logger)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "service error", "status", status, "error", err)
	} else {
		logger.WarnContext(ctx, "service error", "status", status, "error", err)
	}

	h.writeError(w, status, message)
}

// errorStatus picks the status code and client message for err.
func errorStatus(err error, defaultMsg string) (int, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, fmt.Sprintf("Validation error: %s", validationErr.Error())
	}

	var configErr *concepts.ConfigError
	if errors.As(err, &configErr) {
		return http.StatusUnprocessableEntity, configErr.Error()
	}

	// Check for wrapped errors
	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusUnprocessableEntity, "Invalid input"
	}

	if errors.Is(err, service.ErrNoCaptions) {
		return http.StatusNotFound, "No captions available for this video"
	}

	if errors.Is(err, service.ErrSourceUnavailable) {
		return http.StatusBadGateway, "Video source unavailable"
	}

	// Default to internal server error
	return http.StatusInternalServerError, defaultMsg
}

// writeError writes an error response.
func (h *AnalyzeHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}
