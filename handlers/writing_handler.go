package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/writing"
	"github.com/codessneha/synthia/utils"
)

// WritingService defines the prose review operations the handler depends on
type WritingService interface {
	AnalyzeText(ctx context.Context, text string, analysisTypes []string) (*writing.Report, error)
	Paraphrase(ctx context.Context, text, style string) (*writing.ParaphraseResult, error)
	ImproveSentence(ctx context.Context, sentence, focus string) (*writing.Improvement, error)
}

// AnalyzeWritingRequest is the body of POST /api/v1/writing/analyze-writing
type AnalyzeWritingRequest struct {
	Text          string   `json:"text" validate:"required,min=50"`
	AnalysisTypes []string `json:"analysis_types" validate:"omitempty,dive,oneof=grammar style clarity academic"`
}

// ParaphraseRequest is the body of POST /api/v1/writing/paraphrase
type ParaphraseRequest struct {
	Text  string `json:"text" validate:"required,min=1"`
	Style string `json:"style"`
}

// ImproveSentenceRequest is the body of POST /api/v1/writing/improve-sentence
type ImproveSentenceRequest struct {
	Sentence string `json:"sentence" validate:"required,min=1"`
	Focus    string `json:"focus"`
}

// WritingHandler handles writing review and rewriting endpoints
type WritingHandler struct {
	service WritingService
	logger  *zap.Logger
}

// NewWritingHandler creates a writing handler
func NewWritingHandler(service WritingService, logger *zap.Logger) *WritingHandler {
	return &WritingHandler{
		service: service,
		logger:  logger,
	}
}

// HandleAnalyzeWriting handles POST /api/v1/writing/analyze-writing
func (h *WritingHandler) HandleAnalyzeWriting(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeWritingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("analyzing writing",
		zap.Int("text_length", len(req.Text)),
		zap.Strings("analysis_types", req.AnalysisTypes))

	report, err := h.service.AnalyzeText(r.Context(), req.Text, req.AnalysisTypes)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, report)
}

// HandleParaphrase handles POST /api/v1/writing/paraphrase
func (h *WritingHandler) HandleParaphrase(w http.ResponseWriter, r *http.Request) {
	var req ParaphraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	result, err := h.service.Paraphrase(r.Context(), req.Text, req.Style)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, result)
}

// HandleImproveSentence handles POST /api/v1/writing/improve-sentence
func (h *WritingHandler) HandleImproveSentence(w http.ResponseWriter, r *http.Request) {
	var req ImproveSentenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	result, err := h.service.ImproveSentence(r.Context(), req.Sentence, req.Focus)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, result)
}
