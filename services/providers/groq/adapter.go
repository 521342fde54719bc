package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/codessneha/synthia/services"
	"github.com/codessneha/synthia/services/providers"
)

// Groq exposes an OpenAI-compatible chat completions API.
const defaultBaseURL = "https://api.groq.com/openai/v1"

// Adapter implements the Provider interface for Groq
type Adapter struct {
	config     providers.Config
	httpClient *http.Client
}

// New creates a new Groq adapter
func New(config providers.Config) *Adapter {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Name returns the provider family name
func (a *Adapter) Name() string {
	return providers.FamilyGroq
}

// Complete performs a chat completion request against the Groq API
func (a *Adapter) Complete(ctx context.Context, req *providers.ChatRequest) (*providers.ChatResponse, error) {
	if a.config.APIKey == "" {
		return nil, services.NewConfigurationError("groq client not initialized, check API key", nil)
	}

	body := buildRequestBody(req)

	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, providers.NewProviderError(a.Name(), "failed to marshal request", 0, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.BaseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, providers.NewProviderError(a.Name(), "failed to create request", 0, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	for k, v := range a.config.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, providers.NewProviderError(a.Name(), "request failed", 0, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, providers.NewProviderError(a.Name(), "failed to read response", httpResp.StatusCode, err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, handleErrorResponse(a.Name(), httpResp.StatusCode, respBody)
	}

	var groqResp chatResponse
	if err := json.Unmarshal(respBody, &groqResp); err != nil {
		return nil, providers.NewProviderError(a.Name(), "failed to unmarshal response", httpResp.StatusCode, err)
	}

	if len(groqResp.Choices) == 0 {
		return nil, providers.NewProviderError(a.Name(), "empty choices in response", httpResp.StatusCode, nil)
	}

	return &providers.ChatResponse{
		Content:      groqResp.Choices[0].Message.Content,
		Tokens:       groqResp.Usage.TotalTokens,
		FinishReason: groqResp.Choices[0].FinishReason,
		Model:        req.Model,
		Provider:     a.Name(),
	}, nil
}

// buildRequestBody converts the unified request to the Groq wire shape.
// Extra parameters are forwarded verbatim.
func buildRequestBody(req *providers.ChatRequest) map[string]interface{} {
	messages := make([]chatMessage, len(req.Messages))
	for i, msg := range req.Messages {
		messages[i] = chatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	body := map[string]interface{}{
		"model":       req.Model,
		"messages":    messages,
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}
	for k, v := range req.Extra {
		body[k] = v
	}

	return body
}

// handleErrorResponse converts a Groq error payload to a ProviderError
func handleErrorResponse(provider string, statusCode int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return providers.NewProviderError(provider, string(body), statusCode, nil)
	}
	return providers.NewProviderError(provider, errResp.Error.Message, statusCode, nil)
}

// Groq wire types (OpenAI-compatible)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
