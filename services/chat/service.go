package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/inference"
	"github.com/codessneha/synthia/services/providers"
)

const (
	// historyWindow bounds how many prior turns are replayed to the model
	historyWindow = 10

	// suggestionWindow bounds how much recent conversation informs suggestions
	suggestionWindow = 5

	abstractExcerptLength = 500
	maxSuggestions        = 5
)

// CompletionClient generates LLM completions for the chat service
type CompletionClient interface {
	GenerateCompletion(ctx context.Context, messages []providers.Message, params inference.GenerationParams) (*providers.ChatResponse, error)
}

// PaperContext is the per-session paper metadata woven into the system prompt
type PaperContext struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// CompletionInput carries one conversational turn with its session context
type CompletionInput struct {
	Message     string
	Papers      []PaperContext
	History     []providers.Message
	Model       string
	Temperature float64
	MaxTokens   int
}

// CompletionOutput is the reply plus generation metadata
type CompletionOutput struct {
	Content      string `json:"content"`
	Model        string `json:"model"`
	Provider     string `json:"provider"`
	Tokens       int    `json:"tokens"`
	FinishReason string `json:"finish_reason"`
}

// Summary is a condensed view of a conversation
type Summary struct {
	Summary      string `json:"summary"`
	MessageCount int    `json:"message_count"`
	Tokens       int    `json:"tokens"`
}

// Suggestions holds generated follow-up questions
type Suggestions struct {
	Questions []string `json:"questions"`
	Tokens    int      `json:"tokens"`
}

// Service handles conversational AI over research-paper context
type Service struct {
	llm          CompletionClient
	defaultModel string
	logger       *zap.Logger
}

// NewService creates a chat service. defaultModel is used for summarization
// and question suggestion, which do not take a caller-chosen model.
func NewService(llm CompletionClient, defaultModel string, logger *zap.Logger) *Service {
	return &Service{
		llm:          llm,
		defaultModel: defaultModel,
		logger:       logger,
	}
}

// Completion generates a reply to the user's message given the session papers
// and conversation history
func (s *Service) Completion(ctx context.Context, input CompletionInput) (*CompletionOutput, error) {
	messages := buildMessages(input.Message, input.History, buildPaperContext(input.Papers))

	resp, err := s.llm.GenerateCompletion(ctx, messages, inference.GenerationParams{
		Model:       input.Model,
		Temperature: input.Temperature,
		MaxTokens:   input.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &CompletionOutput{
		Content:      resp.Content,
		Model:        resp.Model,
		Provider:     resp.Provider,
		Tokens:       resp.Tokens,
		FinishReason: resp.FinishReason,
	}, nil
}

// Summarize condenses a conversation into key points and insights
func (s *Service) Summarize(ctx context.Context, messages []providers.Message, sessionName string) (*Summary, error) {
	s.logger.Info("summarizing conversation", zap.String("session", sessionName))

	lines := make([]string, len(messages))
	for i, msg := range messages {
		lines[i] = fmt.Sprintf("%s: %s", strings.ToUpper(msg.Role), msg.Content)
	}

	systemPrompt := `You are an AI assistant that summarizes research discussions.
Create a concise summary of the conversation, highlighting:
1. Main topics discussed
2. Key questions asked
3. Important insights or conclusions
4. Action items or next steps (if any)

Keep the summary clear and organized.`

	resp, err := s.llm.GenerateCompletion(ctx, []providers.Message{
		{Role: providers.RoleSystem, Content: systemPrompt},
		{Role: providers.RoleUser, Content: "Summarize this conversation:\n\n" + strings.Join(lines, "\n\n")},
	}, inference.GenerationParams{
		Model:       s.defaultModel,
		Temperature: 0.5,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, err
	}

	return &Summary{
		Summary:      resp.Content,
		MessageCount: len(messages),
		Tokens:       resp.Tokens,
	}, nil
}

// SuggestQuestions generates follow-up questions from papers and recent
// conversation
func (s *Service) SuggestQuestions(ctx context.Context, papers []PaperContext, history []providers.Message) (*Suggestions, error) {
	titles := make([]string, len(papers))
	for i, p := range papers {
		title := p.Title
		if title == "" {
			title = "Untitled"
		}
		titles[i] = "- " + title
	}

	recent := history
	if len(recent) > suggestionWindow {
		recent = recent[len(recent)-suggestionWindow:]
	}
	conversation := "No conversation yet"
	if len(recent) > 0 {
		lines := make([]string, len(recent))
		for i, msg := range recent {
			lines[i] = fmt.Sprintf("%s: %s", msg.Role, msg.Content)
		}
		conversation = strings.Join(lines, "\n")
	}

	prompt := fmt.Sprintf(`Based on these research papers:
%s

And recent conversation:
%s

Suggest 5 insightful questions a researcher might want to ask about these papers.
Format as a simple numbered list.`, strings.Join(titles, "\n"), conversation)

	resp, err := s.llm.GenerateCompletion(ctx, []providers.Message{
		{Role: providers.RoleSystem, Content: "You are a research assistant helping formulate good research questions."},
		{Role: providers.RoleUser, Content: prompt},
	}, inference.GenerationParams{
		Model:       s.defaultModel,
		Temperature: 0.8,
		MaxTokens:   300,
	})
	if err != nil {
		return nil, err
	}

	return &Suggestions{
		Questions: parseQuestions(resp.Content),
		Tokens:    resp.Tokens,
	}, nil
}

// buildPaperContext formats session papers for the system prompt
func buildPaperContext(papers []PaperContext) string {
	if len(papers) == 0 {
		return "No papers in context."
	}

	parts := make([]string, len(papers))
	for i, paper := range papers {
		title := paper.Title
		if title == "" {
			title = "Untitled"
		}
		abstract := paper.Abstract
		if len(abstract) > abstractExcerptLength {
			abstract = abstract[:abstractExcerptLength]
		}
		keywords := paper.Keywords
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}

		parts[i] = fmt.Sprintf(`
Paper %d: %s
Authors: %s
Keywords: %s
Abstract: %s...
`, i+1, title, strings.Join(paper.Authors, ", "), strings.Join(keywords, ", "), abstract)
	}

	return strings.Join(parts, "\n")
}

// buildMessages assembles the turn list: system prompt with paper context,
// the recent history window, then the current user message
func buildMessages(userMessage string, history []providers.Message, paperContext string) []providers.Message {
	systemPrompt := fmt.Sprintf(`You are Synthia, an AI research assistant specializing in academic literature analysis.
You help researchers understand, compare, and synthesize research papers.

Papers in this session:
%s

Guidelines:
- Provide accurate, insightful analysis based on the papers
- Cite specific papers when referencing information
- Be concise but thorough
- Ask clarifying questions when needed
- Highlight connections between papers
- Point out contradictions or gaps in research`, paperContext)

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	messages := make([]providers.Message, 0, len(history)+2)
	messages = append(messages, providers.Message{Role: providers.RoleSystem, Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, providers.Message{Role: providers.RoleUser, Content: userMessage})

	return messages
}

// parseQuestions extracts numbered questions from an LLM reply
func parseQuestions(content string) []string {
	var questions []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		prefix := line
		if len(prefix) > 3 {
			prefix = prefix[:3]
		}
		if strings.ContainsAny(prefix, "0123456789") {
			questions = append(questions, line)
		}
		if len(questions) == maxSuggestions {
			break
		}
	}
	return questions
}
