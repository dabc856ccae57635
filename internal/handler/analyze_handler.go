package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"item-api/internal/analyzer"
	"item-api/internal/model"
	"item-api/internal/validation"

	"github.com/rs/zerolog"
)

// AnalyzeHandler serves the text analysis endpoint.
type AnalyzeHandler struct {
	validator *validation.Validator
	logger    zerolog.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(validator *validation.Validator, logger zerolog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		validator: validator,
		logger:    logger.With().Str("handler", "analyze").Logger(),
	}
}

// Analyze handles POST /api/v1/analyze requests.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req analyzer.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			writeErrorDetails(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid input data",
				validationErr.Fields, h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", h.logger)
		return
	}

	result := analyzer.Analyze(*req.Text)
	h.logger.Debug().
		Int("word_count", result.WordCount).
		Int("char_count", result.CharCount).
		Msg("text analysed")

	writeJSON(w, http.StatusOK, result)
}
