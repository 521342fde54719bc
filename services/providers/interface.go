package providers

import (
	"context"
	"fmt"
	"time"
)

// Message roles understood by the unified schema.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider family names for the supported integrations.
const (
	FamilyOpenAI    = "openai"
	FamilyAnthropic = "anthropic"
	FamilyGroq      = "groq"
)

// Provider represents a unified LLM provider interface
type Provider interface {
	// Name returns the provider family name (e.g., "openai", "anthropic", "groq")
	Name() string

	// Complete performs a chat completion request
	Complete(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// Message represents a single message in a conversation
type Message struct {
	// Role can be "system", "user", or "assistant"
	Role string `json:"role"`

	// Content is the message text
	Content string `json:"content"`
}

// ChatRequest represents a unified chat completion request
type ChatRequest struct {
	// Model identifier (e.g., "gpt-4", "claude-3-sonnet-20240229")
	Model string `json:"model"`

	// Messages in the conversation, ordered by turn
	Messages []Message `json:"messages"`

	// Temperature controls randomness (0.0 to 2.0)
	Temperature float64 `json:"temperature"`

	// MaxTokens limits the response length
	MaxTokens int `json:"max_tokens"`

	// Extra holds provider passthrough parameters, forwarded verbatim
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// ChatResponse represents a normalized chat completion response
type ChatResponse struct {
	// Content is the generated text
	Content string `json:"content"`

	// Tokens consumed by the request, prompt plus completion
	Tokens int `json:"tokens"`

	// FinishReason is the provider-reported termination cause, passed through
	FinishReason string `json:"finish_reason"`

	// Model actually invoked; differs from the request after a fallback
	Model string `json:"model"`

	// Provider family that served the request
	Provider string `json:"provider"`
}

// Config holds common configuration for provider adapters
type Config struct {
	// APIKey for authentication
	APIKey string

	// BaseURL for the API (optional override)
	BaseURL string

	// DefaultModel used when the router substitutes a model for this family
	DefaultModel string

	// Timeout for requests
	Timeout time.Duration

	// Additional headers
	Headers map[string]string
}

// ProviderError represents an error from a provider API or its transport
type ProviderError struct {
	// Provider that generated the error
	Provider string

	// Message is the error message
	Message string

	// StatusCode is the HTTP status code (if applicable)
	StatusCode int

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// Unwrap implements error unwrapping
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new provider error
func NewProviderError(provider, message string, statusCode int, cause error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}
