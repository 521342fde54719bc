package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/inference"
	"github.com/codessneha/synthia/services/providers"
)

// CompletionClient generates LLM completions for the analyzer
type CompletionClient interface {
	GenerateCompletion(ctx context.Context, messages []providers.Message, params inference.GenerationParams) (*providers.ChatResponse, error)
}

// Service analyzes research papers using LLM completions. Prompt assembly
// lives here; provider selection, retry, and normalization live below in the
// inference service.
type Service struct {
	llm    CompletionClient
	model  string
	logger *zap.Logger
}

// NewService creates a paper analysis service. model is the preferred model
// identifier for analysis calls; the router substitutes when its family is
// not configured.
func NewService(llm CompletionClient, model string, logger *zap.Logger) *Service {
	return &Service{
		llm:    llm,
		model:  model,
		logger: logger,
	}
}

// ComparePapers performs a comparative analysis across papers
func (s *Service) ComparePapers(ctx context.Context, papers []Paper, focusAreas []string) (*Comparison, error) {
	resp, err := s.complete(ctx, comparisonSystemPrompt, buildComparisonPrompt(papers, focusAreas), 0.5, 2000)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Summary         string      `json:"summary"`
		Similarities    interface{} `json:"similarities"`
		Differences     interface{} `json:"differences"`
		Gaps            interface{} `json:"gaps"`
		Recommendations interface{} `json:"recommendations"`
	}
	if err := DecodeJSON(resp.Content, &parsed); err != nil {
		// Not all models return well-formed JSON; degrade to prose.
		s.logger.Warn("comparison reply was not JSON, returning prose summary", zap.Error(err))
		return &Comparison{Summary: resp.Content}, nil
	}

	summary := parsed.Summary
	if summary == "" {
		summary = truncate(resp.Content, 500)
	}

	similarities := coerceList(parsed.Similarities)

	return &Comparison{
		Summary:         summary,
		Similarities:    similarities,
		Differences:     coerceList(parsed.Differences),
		Insights:        similarities,
		Gaps:            coerceList(parsed.Gaps),
		Recommendations: coerceList(parsed.Recommendations),
	}, nil
}

// SummarizePaper generates a paper summary. summaryType is one of "brief",
// "detailed", or "technical"; anything else falls back to detailed.
func (s *Service) SummarizePaper(ctx context.Context, paper Paper, summaryType string) (*PaperSummary, error) {
	var instructions string
	var maxTokens int

	switch summaryType {
	case "brief":
		instructions = "Provide a 2-3 sentence summary of the main contribution."
		maxTokens = 200
	case "technical":
		instructions = "Provide a technical summary including methodology, datasets, metrics, and results."
		maxTokens = 1000
	default:
		summaryType = "detailed"
		instructions = "Provide a comprehensive summary including background, methodology, key findings, and implications."
		maxTokens = 800
	}

	resp, err := s.complete(ctx, summarySystemPrompt, buildSummaryPrompt(paper, instructions), 0.3, maxTokens)
	if err != nil {
		return nil, err
	}

	return &PaperSummary{
		Summary:    resp.Content,
		Type:       summaryType,
		TokensUsed: resp.Tokens,
	}, nil
}

// IdentifyGaps analyzes papers for research gaps in the given area
func (s *Service) IdentifyGaps(ctx context.Context, papers []Paper, researchArea string) (*GapAnalysis, error) {
	resp, err := s.complete(ctx, gapSystemPrompt, buildGapPrompt(papers, researchArea), 0.6, 1500)
	if err != nil {
		return nil, err
	}

	return &GapAnalysis{
		Analysis:       resp.Content,
		ResearchArea:   researchArea,
		PapersAnalyzed: len(papers),
	}, nil
}

// ExtractMethodology pulls structured methodology details out of a paper's
// metadata. A reply that is not JSON degrades to a single description field.
func (s *Service) ExtractMethodology(ctx context.Context, paper Paper) (map[string]interface{}, error) {
	resp, err := s.complete(ctx, extractionSystemPrompt, buildMethodologyExtractionPrompt(paper), 0.3, 1000)
	if err != nil {
		return nil, err
	}

	var methodology map[string]interface{}
	if err := DecodeJSON(resp.Content, &methodology); err != nil {
		s.logger.Warn("methodology extraction reply was not JSON", zap.Error(err))
		return map[string]interface{}{"description": resp.Content}, nil
	}
	return methodology, nil
}

// ExtractKeyInsights lists the most important findings across papers, capped
// at maxInsights
func (s *Service) ExtractKeyInsights(ctx context.Context, papers []Paper, maxInsights int) ([]string, error) {
	if maxInsights <= 0 {
		maxInsights = 10
	}

	resp, err := s.complete(ctx, insightsSystemPrompt, buildInsightsPrompt(papers, maxInsights), 0.4, 800)
	if err != nil {
		return nil, err
	}

	insights := SplitLines(resp.Content)
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights, nil
}

// AnalyzeTrends identifies evolving themes and methods across a paper
// collection
func (s *Service) AnalyzeTrends(ctx context.Context, papers []Paper) (*TrendAnalysis, error) {
	resp, err := s.complete(ctx, trendSystemPrompt, buildTrendsPrompt(papers), 0.5, 1200)
	if err != nil {
		return nil, err
	}

	return &TrendAnalysis{
		Analysis:   resp.Content,
		PaperCount: len(papers),
	}, nil
}

// AnalyzeStructure scores section organization and completeness
func (s *Service) AnalyzeStructure(ctx context.Context, sections []Section) (*StructureReport, error) {
	resp, err := s.complete(ctx, reviewerSystemPrompt, buildStructurePrompt(sections), 0.2, 2000)
	if err != nil {
		return nil, err
	}

	report := &StructureReport{}
	if err := DecodeJSON(resp.Content, report); err != nil {
		s.logger.Warn("structure reply was not JSON", zap.Error(err))
		present := make([]string, len(sections))
		for i, sec := range sections {
			present[i] = sec.Type
		}
		return &StructureReport{
			Score:           50.0,
			PresentSections: present,
			Suggestions:     []string{"Could not analyze structure - please try again"},
		}, nil
	}
	return report, nil
}

// AnalyzeMethodology scores a methodology section for completeness and rigor
func (s *Service) AnalyzeMethodology(ctx context.Context, content string) (*MethodologyReport, error) {
	resp, err := s.complete(ctx, reviewerSystemPrompt, buildMethodologyPrompt(content), 0.3, 1500)
	if err != nil {
		return nil, err
	}

	report := &MethodologyReport{}
	if err := DecodeJSON(resp.Content, report); err != nil {
		s.logger.Warn("methodology reply was not JSON", zap.Error(err))
		return &MethodologyReport{
			Score:        50.0,
			Completeness: "Unknown",
			Suggestions:  []string{"Could not analyze methodology"},
		}, nil
	}
	return report, nil
}

// AnalyzeClarity scores readability of academic text
func (s *Service) AnalyzeClarity(ctx context.Context, content string) (*ClarityReport, error) {
	resp, err := s.complete(ctx, reviewerSystemPrompt, buildClarityPrompt(content), 0.3, 1500)
	if err != nil {
		return nil, err
	}

	report := &ClarityReport{}
	if err := DecodeJSON(resp.Content, report); err != nil {
		s.logger.Warn("clarity reply was not JSON", zap.Error(err))
		return &ClarityReport{
			Score:            70.0,
			ReadabilityGrade: "Standard",
			Suggestions:      []string{"Could not analyze clarity"},
		}, nil
	}
	return report, nil
}

// AnalyzeTone scores academic tone and formality
func (s *Service) AnalyzeTone(ctx context.Context, content string) (*ToneReport, error) {
	resp, err := s.complete(ctx, reviewerSystemPrompt, buildTonePrompt(content), 0.3, 1500)
	if err != nil {
		return nil, err
	}

	report := &ToneReport{}
	if err := DecodeJSON(resp.Content, report); err != nil {
		s.logger.Warn("tone reply was not JSON", zap.Error(err))
		return &ToneReport{
			Score:       75.0,
			IsFormal:    true,
			Suggestions: []string{"Could not analyze academic tone"},
		}, nil
	}
	return report, nil
}

func (s *Service) complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (*providers.ChatResponse, error) {
	messages := []providers.Message{
		{Role: providers.RoleSystem, Content: systemPrompt},
		{Role: providers.RoleUser, Content: userPrompt},
	}

	return s.llm.GenerateCompletion(ctx, messages, inference.GenerationParams{
		Model:       s.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
}

// coerceList extracts a string list from the loosely typed shapes LLM JSON
// replies come back in.
func coerceList(v interface{}) []string {
	switch val := v.(type) {
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	case string:
		return SplitLines(val)
	case map[string]interface{}:
		items := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
		return items
	default:
		return nil
	}
}
