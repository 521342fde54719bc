package writing

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/analysis"
	"github.com/codessneha/synthia/services/inference"
	"github.com/codessneha/synthia/services/providers"
)

const (
	maxSuggestionsPerPass = 10
	maxImprovements       = 5
	defaultMaxTokens      = 2000
)

// Analysis pass names accepted in a writing-analysis request.
const (
	PassGrammar  = "grammar"
	PassStyle    = "style"
	PassClarity  = "clarity"
	PassAcademic = "academic"
)

// CompletionClient generates LLM completions for the writing service
type CompletionClient interface {
	GenerateCompletion(ctx context.Context, messages []providers.Message, params inference.GenerationParams) (*providers.ChatResponse, error)
}

// Suggestion is one issue found by a writing analysis pass
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Original    string `json:"original,omitempty"`
	Replacement string `json:"replacement,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// Report groups suggestions by analysis pass plus overall improvements
type Report struct {
	Grammar      []Suggestion `json:"grammar"`
	Style        []Suggestion `json:"style"`
	Clarity      []Suggestion `json:"clarity"`
	Academic     []Suggestion `json:"academic"`
	Improvements []string     `json:"improvements"`
}

// ParaphraseResult is a restated version of the input text
type ParaphraseResult struct {
	Paraphrased string `json:"paraphrased"`
	Style       string `json:"style"`
	Tokens      int    `json:"tokens"`
}

// Improvement is a rewritten sentence with the focus that guided it
type Improvement struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
	Focus    string `json:"focus"`
}

// Service reviews and rewrites academic prose using LLM completions
type Service struct {
	llm    CompletionClient
	model  string
	logger *zap.Logger
}

// NewService creates a writing service
func NewService(llm CompletionClient, model string, logger *zap.Logger) *Service {
	return &Service{
		llm:    llm,
		model:  model,
		logger: logger,
	}
}

type pass struct {
	prompt      func(text string) string
	temperature float64
	assign      func(report *Report, suggestions []Suggestion)
}

var passes = map[string]pass{
	PassGrammar: {
		prompt:      buildGrammarPrompt,
		temperature: 0.3,
		assign:      func(r *Report, s []Suggestion) { r.Grammar = s },
	},
	PassStyle: {
		prompt:      buildStylePrompt,
		temperature: 0.5,
		assign:      func(r *Report, s []Suggestion) { r.Style = s },
	},
	PassClarity: {
		prompt:      buildClarityPrompt,
		temperature: 0.4,
		assign:      func(r *Report, s []Suggestion) { r.Clarity = s },
	},
	PassAcademic: {
		prompt:      buildAcademicPrompt,
		temperature: 0.3,
		assign:      func(r *Report, s []Suggestion) { r.Academic = s },
	},
}

// AnalyzeText runs the requested analysis passes over the text and collects
// suggestions per pass. A pass whose reply cannot be parsed contributes no
// suggestions rather than failing the whole analysis; the overall
// improvements list always gets a value, falling back to generic advice.
func (s *Service) AnalyzeText(ctx context.Context, text string, analysisTypes []string) (*Report, error) {
	if len(analysisTypes) == 0 {
		analysisTypes = []string{PassGrammar, PassStyle, PassClarity, PassAcademic}
	}

	report := &Report{
		Grammar:  []Suggestion{},
		Style:    []Suggestion{},
		Clarity:  []Suggestion{},
		Academic: []Suggestion{},
	}

	for _, name := range analysisTypes {
		p, ok := passes[name]
		if !ok {
			continue
		}

		resp, err := s.complete(ctx, p.prompt(text), p.temperature)
		if err != nil {
			return nil, err
		}

		var suggestions []Suggestion
		if err := analysis.DecodeJSON(resp.Content, &suggestions); err != nil {
			s.logger.Warn("writing analysis reply was not JSON",
				zap.String("pass", name),
				zap.Error(err))
			continue
		}
		if len(suggestions) > maxSuggestionsPerPass {
			suggestions = suggestions[:maxSuggestionsPerPass]
		}
		p.assign(report, suggestions)
	}

	resp, err := s.complete(ctx, buildImprovementsPrompt(text), 0.6)
	if err != nil {
		return nil, err
	}

	var improvements []string
	if err := analysis.DecodeJSON(resp.Content, &improvements); err != nil {
		s.logger.Warn("improvements reply was not JSON", zap.Error(err))
		improvements = defaultImprovements()
	}
	if len(improvements) > maxImprovements {
		improvements = improvements[:maxImprovements]
	}
	report.Improvements = improvements

	return report, nil
}

// Paraphrase restates the text in the given style while preserving meaning
func (s *Service) Paraphrase(ctx context.Context, text, style string) (*ParaphraseResult, error) {
	if style == "" {
		style = "academic"
	}

	resp, err := s.complete(ctx, buildParaphrasePrompt(text, style), 0.7)
	if err != nil {
		return nil, err
	}

	return &ParaphraseResult{
		Paraphrased: resp.Content,
		Style:       style,
		Tokens:      resp.Tokens,
	}, nil
}

// Sentence rewrite focuses understood by ImproveSentence.
var sentenceFocusInstructions = map[string]string{
	"clarity":     "Make this sentence clearer and easier to understand",
	"conciseness": "Make this sentence more concise without losing meaning",
	"academic":    "Make this sentence more suitable for academic writing",
	"formal":      "Make this sentence more formal",
}

// ImproveSentence rewrites one sentence guided by the requested focus.
// Unknown focuses rewrite for clarity.
func (s *Service) ImproveSentence(ctx context.Context, sentence, focus string) (*Improvement, error) {
	if focus == "" {
		focus = "clarity"
	}
	instruction, ok := sentenceFocusInstructions[focus]
	if !ok {
		instruction = sentenceFocusInstructions["clarity"]
	}

	prompt := fmt.Sprintf(`%s:

Original: %s

Return only the improved sentence, nothing else.`, instruction, sentence)

	resp, err := s.complete(ctx, prompt, 0.5)
	if err != nil {
		return nil, err
	}

	return &Improvement{
		Original: sentence,
		Improved: resp.Content,
		Focus:    focus,
	}, nil
}

func (s *Service) complete(ctx context.Context, prompt string, temperature float64) (*providers.ChatResponse, error) {
	return s.llm.GenerateCompletion(ctx, []providers.Message{
		{Role: providers.RoleUser, Content: prompt},
	}, inference.GenerationParams{
		Model:       s.model,
		Temperature: temperature,
		MaxTokens:   defaultMaxTokens,
	})
}

func defaultImprovements() []string {
	return []string{
		"Review overall structure and flow",
		"Check all citations and references",
		"Ensure consistent academic tone",
		"Verify all claims are supported",
		"Proofread for grammar and clarity",
	}
}
