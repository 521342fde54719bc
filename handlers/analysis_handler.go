package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/analysis"
	"github.com/codessneha/synthia/utils"
)

// AnalyzerService defines the multi-paper analysis operations the handler
// depends on
type AnalyzerService interface {
	ComparePapers(ctx context.Context, papers []analysis.Paper, focusAreas []string) (*analysis.Comparison, error)
	SummarizePaper(ctx context.Context, paper analysis.Paper, summaryType string) (*analysis.PaperSummary, error)
	IdentifyGaps(ctx context.Context, papers []analysis.Paper, researchArea string) (*analysis.GapAnalysis, error)
	ExtractMethodology(ctx context.Context, paper analysis.Paper) (map[string]interface{}, error)
	ExtractKeyInsights(ctx context.Context, papers []analysis.Paper, maxInsights int) ([]string, error)
	AnalyzeTrends(ctx context.Context, papers []analysis.Paper) (*analysis.TrendAnalysis, error)
}

// CompareRequest is the body of POST /api/v1/analysis/compare
type CompareRequest struct {
	Papers     []analysis.Paper `json:"papers" validate:"required,min=2,max=10"`
	FocusAreas []string         `json:"focusAreas"`
}

// SummarizePaperRequest is the body of POST /api/v1/analysis/summarize
type SummarizePaperRequest struct {
	Paper       analysis.Paper `json:"paper" validate:"required"`
	SummaryType string         `json:"summaryType" validate:"omitempty,oneof=brief detailed technical"`
}

// GapAnalysisRequest is the body of POST /api/v1/analysis/gap-analysis
type GapAnalysisRequest struct {
	Papers       []analysis.Paper `json:"papers" validate:"required,min=2"`
	ResearchArea string           `json:"researchArea" validate:"required"`
}

// ExtractMethodologyRequest is the body of POST /api/v1/analysis/extract-methodology
type ExtractMethodologyRequest struct {
	Paper analysis.Paper `json:"paper" validate:"required"`
}

// KeyInsightsRequest is the body of POST /api/v1/analysis/key-insights
type KeyInsightsRequest struct {
	Papers      []analysis.Paper `json:"papers" validate:"required,min=1"`
	MaxInsights int              `json:"maxInsights" validate:"omitempty,gt=0,lte=50"`
}

// TrendAnalysisRequest is the body of POST /api/v1/analysis/trends
type TrendAnalysisRequest struct {
	Papers    []analysis.Paper `json:"papers" validate:"required,min=1"`
	Timeframe string           `json:"timeframe"`
}

// AnalysisHandler handles comparative paper analysis endpoints
type AnalysisHandler struct {
	service AnalyzerService
	logger  *zap.Logger
}

// NewAnalysisHandler creates an analysis handler
func NewAnalysisHandler(service AnalyzerService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger,
	}
}

// HandleCompare handles POST /api/v1/analysis/compare
func (h *AnalysisHandler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	if len(req.FocusAreas) == 0 {
		req.FocusAreas = []string{"methodology", "findings", "limitations"}
	}

	h.logger.Info("comparing papers", zap.Int("count", len(req.Papers)))

	result, err := h.service.ComparePapers(r.Context(), req.Papers, req.FocusAreas)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, result)
}

// HandleSummarize handles POST /api/v1/analysis/summarize
func (h *AnalysisHandler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizePaperRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("summarizing paper", zap.String("title", req.Paper.Title))

	summary, err := h.service.SummarizePaper(r.Context(), req.Paper, req.SummaryType)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, map[string]interface{}{
		"summary":  summary,
		"paper_id": req.Paper.ID,
		"title":    req.Paper.Title,
	})
}

// HandleGapAnalysis handles POST /api/v1/analysis/gap-analysis
func (h *AnalysisHandler) HandleGapAnalysis(w http.ResponseWriter, r *http.Request) {
	var req GapAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	result, err := h.service.IdentifyGaps(r.Context(), req.Papers, req.ResearchArea)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, result)
}

// HandleExtractMethodology handles POST /api/v1/analysis/extract-methodology
func (h *AnalysisHandler) HandleExtractMethodology(w http.ResponseWriter, r *http.Request) {
	var req ExtractMethodologyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("extracting methodology", zap.String("title", req.Paper.Title))

	methodology, err := h.service.ExtractMethodology(r.Context(), req.Paper)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, map[string]interface{}{
		"paper_id":    req.Paper.ID,
		"methodology": methodology,
	})
}

// HandleKeyInsights handles POST /api/v1/analysis/key-insights
func (h *AnalysisHandler) HandleKeyInsights(w http.ResponseWriter, r *http.Request) {
	var req KeyInsightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	insights, err := h.service.ExtractKeyInsights(r.Context(), req.Papers, req.MaxInsights)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, map[string]interface{}{
		"insights":    insights,
		"paper_count": len(req.Papers),
	})
}

// HandleTrends handles POST /api/v1/analysis/trends
func (h *AnalysisHandler) HandleTrends(w http.ResponseWriter, r *http.Request) {
	var req TrendAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	trends, err := h.service.AnalyzeTrends(r.Context(), req.Papers)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, map[string]interface{}{
		"trends":      trends,
		"paper_count": len(req.Papers),
		"timeframe":   req.Timeframe,
	})
}
