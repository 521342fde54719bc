package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/analysis"
	"github.com/codessneha/synthia/utils"
)

// WritingReviewService defines the single-document review operations the
// handler depends on
type WritingReviewService interface {
	AnalyzeStructure(ctx context.Context, sections []analysis.Section) (*analysis.StructureReport, error)
	AnalyzeMethodology(ctx context.Context, content string) (*analysis.MethodologyReport, error)
	AnalyzeClarity(ctx context.Context, content string) (*analysis.ClarityReport, error)
	AnalyzeTone(ctx context.Context, content string) (*analysis.ToneReport, error)
}

// StructureAnalysisRequest is the body of POST /api/v1/papers/analyze-structure
type StructureAnalysisRequest struct {
	Sections []analysis.Section `json:"sections" validate:"required,min=1"`
}

// ContentAnalysisRequest is the body of the content-based review endpoints
type ContentAnalysisRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// PaperHandler handles single-paper writing review endpoints
type PaperHandler struct {
	service WritingReviewService
	logger  *zap.Logger
}

// NewPaperHandler creates a paper review handler
func NewPaperHandler(service WritingReviewService, logger *zap.Logger) *PaperHandler {
	return &PaperHandler{
		service: service,
		logger:  logger,
	}
}

// HandleAnalyzeStructure handles POST /api/v1/papers/analyze-structure
func (h *PaperHandler) HandleAnalyzeStructure(w http.ResponseWriter, r *http.Request) {
	var req StructureAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	report, err := h.service.AnalyzeStructure(r.Context(), req.Sections)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, report)
}

// HandleAnalyzeMethodology handles POST /api/v1/papers/analyze-methodology
func (h *PaperHandler) HandleAnalyzeMethodology(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeContent(w, r)
	if !ok {
		return
	}

	report, err := h.service.AnalyzeMethodology(r.Context(), req.Content)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, report)
}

// HandleAnalyzeClarity handles POST /api/v1/papers/analyze-clarity
func (h *PaperHandler) HandleAnalyzeClarity(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeContent(w, r)
	if !ok {
		return
	}

	report, err := h.service.AnalyzeClarity(r.Context(), req.Content)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, report)
}

// HandleAnalyzeTone handles POST /api/v1/papers/analyze-academic-tone
func (h *PaperHandler) HandleAnalyzeTone(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeContent(w, r)
	if !ok {
		return
	}

	report, err := h.service.AnalyzeTone(r.Context(), req.Content)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, report)
}

func (h *PaperHandler) decodeContent(w http.ResponseWriter, r *http.Request) (*ContentAnalysisRequest, bool) {
	var req ContentAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return nil, false
	}

	return &req, true
}
