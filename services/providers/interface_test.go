package providers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *ProviderError
		wantMsg string
	}{
		{
			name:    "with status code",
			err:     NewProviderError("openai", "rate limit exceeded", http.StatusTooManyRequests, nil),
			wantMsg: "openai: rate limit exceeded (status 429)",
		},
		{
			name:    "without status code",
			err:     NewProviderError("groq", "connection refused", 0, nil),
			wantMsg: "groq: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestProviderError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewProviderError("anthropic", "request failed", 0, cause)

	assert.ErrorIs(t, err, cause)
}
