package writing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/inference"
	"github.com/codessneha/synthia/services/providers"
)

type fakeLLM struct {
	responses []string
	calls     int
	err       error
	params    []inference.GenerationParams
	prompts   []string
}

func (f *fakeLLM) GenerateCompletion(ctx context.Context, messages []providers.Message, params inference.GenerationParams) (*providers.ChatResponse, error) {
	f.params = append(f.params, params)
	f.prompts = append(f.prompts, messages[len(messages)-1].Content)
	if f.err != nil {
		return nil, f.err
	}

	content := "ok"
	if f.calls < len(f.responses) {
		content = f.responses[f.calls]
	}
	f.calls++

	return &providers.ChatResponse{
		Content:      content,
		Tokens:       25,
		FinishReason: "stop",
		Model:        params.Model,
		Provider:     "openai",
	}, nil
}

const sampleText = "The results of the experiment was very good and we seen a big improvement in all the metrics what we measured."

func TestAnalyzeText_AllPasses(t *testing.T) {
	suggestion := `[{"title": "Issue", "description": "desc", "category": "cat", "severity": "warning"}]`
	llm := &fakeLLM{responses: []string{
		suggestion, suggestion, suggestion, suggestion,
		`["Tighten the opening paragraph"]`,
	}}
	service := NewService(llm, "gpt-4", zap.NewNop())

	report, err := service.AnalyzeText(context.Background(), sampleText, nil)

	require.NoError(t, err)
	// four passes plus the improvements call
	assert.Equal(t, 5, llm.calls)
	assert.Len(t, report.Grammar, 1)
	assert.Len(t, report.Style, 1)
	assert.Len(t, report.Clarity, 1)
	assert.Len(t, report.Academic, 1)
	assert.Equal(t, []string{"Tighten the opening paragraph"}, report.Improvements)
}

func TestAnalyzeText_SelectedPasses(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`[{"title": "Comma splice", "severity": "error"}]`,
		`["Fix punctuation"]`,
	}}
	service := NewService(llm, "gpt-4", zap.NewNop())

	report, err := service.AnalyzeText(context.Background(), sampleText, []string{PassGrammar})

	require.NoError(t, err)
	assert.Equal(t, 2, llm.calls)
	assert.Len(t, report.Grammar, 1)
	assert.Empty(t, report.Style)
	assert.Empty(t, report.Clarity)
	assert.Empty(t, report.Academic)
}

func TestAnalyzeText_UnparseablePassSkipped(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		"I could not produce JSON for this one.",
		`["Review structure"]`,
	}}
	service := NewService(llm, "gpt-4", zap.NewNop())

	report, err := service.AnalyzeText(context.Background(), sampleText, []string{PassGrammar})

	require.NoError(t, err)
	assert.Empty(t, report.Grammar)
	assert.Equal(t, []string{"Review structure"}, report.Improvements)
}

func TestAnalyzeText_ImprovementsFallback(t *testing.T) {
	llm := &fakeLLM{responses: []string{
		`[]`,
		"Some prose instead of a JSON array.",
	}}
	service := NewService(llm, "gpt-4", zap.NewNop())

	report, err := service.AnalyzeText(context.Background(), sampleText, []string{PassGrammar})

	require.NoError(t, err)
	assert.Len(t, report.Improvements, 5)
	assert.Contains(t, report.Improvements, "Proofread for grammar and clarity")
}

func TestAnalyzeText_SuggestionsCapped(t *testing.T) {
	var entries []string
	for i := 0; i < 15; i++ {
		entries = append(entries, `{"title": "Issue", "severity": "info"}`)
	}
	llm := &fakeLLM{responses: []string{
		"[" + strings.Join(entries, ",") + "]",
		`["ok"]`,
	}}
	service := NewService(llm, "gpt-4", zap.NewNop())

	report, err := service.AnalyzeText(context.Background(), sampleText, []string{PassStyle})

	require.NoError(t, err)
	assert.Len(t, report.Style, 10)
}

func TestAnalyzeText_Error(t *testing.T) {
	llm := &fakeLLM{err: errors.New("provider down")}
	service := NewService(llm, "gpt-4", zap.NewNop())

	_, err := service.AnalyzeText(context.Background(), sampleText, nil)

	assert.Error(t, err)
}

func TestParaphrase(t *testing.T) {
	llm := &fakeLLM{responses: []string{"The experiment yielded strong results."}}
	service := NewService(llm, "gpt-4", zap.NewNop())

	result, err := service.Paraphrase(context.Background(), sampleText, "")

	require.NoError(t, err)
	assert.Equal(t, "The experiment yielded strong results.", result.Paraphrased)
	assert.Equal(t, "academic", result.Style)
	assert.Equal(t, 25, result.Tokens)

	assert.Equal(t, 0.7, llm.params[0].Temperature)
	assert.Contains(t, llm.prompts[0], "in a academic style")
}

func TestImproveSentence(t *testing.T) {
	tests := []struct {
		name          string
		focus         string
		wantFocus     string
		wantMentioned string
	}{
		{name: "clarity default", focus: "", wantFocus: "clarity", wantMentioned: "clearer"},
		{name: "conciseness", focus: "conciseness", wantFocus: "conciseness", wantMentioned: "concise"},
		{name: "unknown falls back to clarity instructions", focus: "funky", wantFocus: "funky", wantMentioned: "clearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &fakeLLM{responses: []string{"Improved."}}
			service := NewService(llm, "gpt-4", zap.NewNop())

			result, err := service.ImproveSentence(context.Background(), "It was good.", tt.focus)

			require.NoError(t, err)
			assert.Equal(t, "It was good.", result.Original)
			assert.Equal(t, "Improved.", result.Improved)
			assert.Equal(t, tt.wantFocus, result.Focus)
			assert.Contains(t, llm.prompts[0], tt.wantMentioned)
		})
	}
}
