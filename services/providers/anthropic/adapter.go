package anthropic

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

const (
	defaultBaseURL = "https://api.anthropic.com"
	apiVersion     = "2023-06-01"
)

// Adapter implements the Provider interface for Anthropic
type Adapter struct {
	config     providers.Config
	httpClient *http.Client
}

// New creates a new Anthropic adapter
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
	return providers.FamilyAnthropic
}

// Complete performs a chat completion request against the Anthropic Messages API
func (a *Adapter) Complete(ctx context.Context, req *providers.ChatRequest) (*providers.ChatResponse, error) {
	if a.config.APIKey == "" {
		return nil, services.NewConfigurationError("anthropic client not initialized, check API key", nil)
	}

	body := a.buildRequestBody(req)

	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, providers.NewProviderError(a.Name(), "failed to marshal request", 0, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.config.BaseURL+"/v1/messages", bytes.NewReader(reqBody))
	if err != nil {
		return nil, providers.NewProviderError(a.Name(), "failed to create request", 0, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.config.APIKey)
	httpReq.Header.Set("anthropic-version", apiVersion)
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

	var anthropicResp messagesResponse
	if err := json.Unmarshal(respBody, &anthropicResp); err != nil {
		return nil, providers.NewProviderError(a.Name(), "failed to unmarshal response", httpResp.StatusCode, err)
	}

	if len(anthropicResp.Content) == 0 {
		return nil, providers.NewProviderError(a.Name(), "empty content in response", httpResp.StatusCode, nil)
	}

	return &providers.ChatResponse{
		Content:      anthropicResp.Content[0].Text,
		Tokens:       anthropicResp.Usage.InputTokens + anthropicResp.Usage.OutputTokens,
		FinishReason: anthropicResp.StopReason,
		Model:        req.Model,
		Provider:     a.Name(),
	}, nil
}

// buildRequestBody converts the unified request to the Anthropic wire shape.
// The Messages API does not accept system-role turns: the first system message
// becomes the top-level system field and any further system messages are left
// in the turn list unchanged. Extra parameters are forwarded verbatim.
func (a *Adapter) buildRequestBody(req *providers.ChatRequest) map[string]interface{} {
	var system string
	systemSet := false
	turns := make([]chatMessage, 0, len(req.Messages))

	for _, msg := range req.Messages {
		if msg.Role == providers.RoleSystem && !systemSet {
			system = msg.Content
			systemSet = true
			continue
		}
		turns = append(turns, chatMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	body := map[string]interface{}{
		"model":       req.Model,
		"messages":    turns,
		"temperature": req.Temperature,
		"max_tokens":  req.MaxTokens,
	}
	if systemSet {
		body["system"] = system
	}
	for k, v := range req.Extra {
		body[k] = v
	}

	return body
}

// handleErrorResponse converts an Anthropic error payload to a ProviderError
func handleErrorResponse(provider string, statusCode int, body []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return providers.NewProviderError(provider, string(body), statusCode, nil)
	}
	return providers.NewProviderError(provider, errResp.Error.Message, statusCode, nil)
}

// Anthropic wire types

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      usage          `json:"usage"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
