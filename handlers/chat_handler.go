package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/chat"
	"github.com/codessneha/synthia/services/providers"
	"github.com/codessneha/synthia/utils"
)

// ChatService defines the chat operations the handler depends on
type ChatService interface {
	Completion(ctx context.Context, input chat.CompletionInput) (*chat.CompletionOutput, error)
	Summarize(ctx context.Context, messages []providers.Message, sessionName string) (*chat.Summary, error)
	SuggestQuestions(ctx context.Context, papers []chat.PaperContext, history []providers.Message) (*chat.Suggestions, error)
}

// ChatMessage is one conversational turn in a request body
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatContext carries the session papers and history
type ChatContext struct {
	SessionID           string              `json:"sessionId"`
	Papers              []chat.PaperContext `json:"papers"`
	ConversationHistory []ChatMessage       `json:"conversationHistory"`
}

// ChatCompletionRequest is the body of POST /api/v1/chat/completion
type ChatCompletionRequest struct {
	Message     string      `json:"message" validate:"required,min=1,max=5000"`
	Context     ChatContext `json:"context"`
	Model       string      `json:"model"`
	Temperature *float64    `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
	MaxTokens   *int        `json:"maxTokens,omitempty" validate:"omitempty,gt=0,lte=4000"`
}

// ChatCompletionResponse is the reply with generation metadata
type ChatCompletionResponse struct {
	ID       string                 `json:"id"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata"`
}

// SummarizeRequest is the body of POST /api/v1/chat/summarize
type SummarizeRequest struct {
	Messages    []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	SessionName string        `json:"sessionName" validate:"required"`
}

// SuggestQuestionsRequest is the body of POST /api/v1/chat/suggest-questions
type SuggestQuestionsRequest struct {
	Papers              []chat.PaperContext `json:"papers" validate:"required,min=1"`
	ConversationHistory []ChatMessage       `json:"conversationHistory"`
}

// ChatHandler handles conversational endpoints
type ChatHandler struct {
	service ChatService
	logger  *zap.Logger
}

// NewChatHandler creates a chat handler
func NewChatHandler(service ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// HandleCompletion handles POST /api/v1/chat/completion
func (h *ChatHandler) HandleCompletion(w http.ResponseWriter, r *http.Request) {
	var req ChatCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	h.logger.Info("chat completion request",
		zap.String("session_id", req.Context.SessionID),
		zap.String("model", req.Model))

	temperature := 0.7
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := 2000
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	model := req.Model
	if model == "" {
		model = "gpt-4"
	}

	output, err := h.service.Completion(r.Context(), chat.CompletionInput{
		Message:     req.Message,
		Papers:      req.Context.Papers,
		History:     toProviderMessages(req.Context.ConversationHistory),
		Model:       model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, ChatCompletionResponse{
		ID:      uuid.New().String(),
		Content: output.Content,
		Metadata: map[string]interface{}{
			"model":         output.Model,
			"provider":      output.Provider,
			"tokens":        output.Tokens,
			"finish_reason": output.FinishReason,
		},
	})
}

// HandleSummarize handles POST /api/v1/chat/summarize
func (h *ChatHandler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	summary, err := h.service.Summarize(r.Context(), toProviderMessages(req.Messages), req.SessionName)
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, summary)
}

// HandleSuggestQuestions handles POST /api/v1/chat/suggest-questions
func (h *ChatHandler) HandleSuggestQuestions(w http.ResponseWriter, r *http.Request) {
	var req SuggestQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	suggestions, err := h.service.SuggestQuestions(r.Context(), req.Papers, toProviderMessages(req.ConversationHistory))
	if err != nil {
		WriteServiceError(w, err, h.logger)
		return
	}

	_ = utils.WriteOK(w, suggestions)
}

func toProviderMessages(messages []ChatMessage) []providers.Message {
	out := make([]providers.Message, len(messages))
	for i, msg := range messages {
		out[i] = providers.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}
	return out
}
