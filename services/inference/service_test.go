package inference

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/codessneha/synthia/services"
	"github.com/codessneha/synthia/services/providers"
	"github.com/codessneha/synthia/services/routing"
)

type scriptedProvider struct {
	name     string
	calls    int
	failures int
	err      error
	response *providers.ChatResponse
	lastReq  *providers.ChatRequest
}

func (p *scriptedProvider) Name() string {
	return p.name
}

func (p *scriptedProvider) Complete(ctx context.Context, req *providers.ChatRequest) (*providers.ChatResponse, error) {
	p.calls++
	p.lastReq = req
	if p.calls <= p.failures {
		return nil, p.err
	}
	if p.response != nil {
		return p.response, nil
	}
	return &providers.ChatResponse{
		Content:      "generated",
		Tokens:       42,
		FinishReason: "stop",
		Model:        req.Model,
		Provider:     p.name,
	}, nil
}

func newTestService(routingCfg routing.Config, families ...*scriptedProvider) *Service {
	registry := providers.NewRegistry()
	for _, p := range families {
		registry.Register(p)
	}
	router := routing.NewService(registry, routingCfg, zap.NewNop())
	policy := RetryPolicy{MaxAttempts: 3, MinDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
	return NewService(router, policy, zap.NewNop())
}

func TestGenerateCompletion_NativeModelPassthrough(t *testing.T) {
	provider := &scriptedProvider{name: providers.FamilyOpenAI}
	service := newTestService(routing.Config{}, provider)

	resp, err := service.GenerateCompletion(context.Background(),
		[]providers.Message{{Role: "user", Content: "hi"}},
		GenerationParams{Model: "gpt-4", Temperature: 0.7, MaxTokens: 100})

	require.NoError(t, err)
	assert.Equal(t, providers.FamilyOpenAI, resp.Provider)
	assert.Equal(t, "gpt-4", provider.lastReq.Model)
	assert.Equal(t, 0.7, provider.lastReq.Temperature)
	assert.Equal(t, 100, provider.lastReq.MaxTokens)
}

func TestGenerateCompletion_FallbackSubstitution(t *testing.T) {
	provider := &scriptedProvider{name: providers.FamilyGroq}
	service := newTestService(routing.Config{
		DefaultModels: map[string]string{
			providers.FamilyGroq: "llama-3.3-70b-versatile",
		},
	}, provider)

	resp, err := service.GenerateCompletion(context.Background(),
		[]providers.Message{{Role: "user", Content: "hi"}},
		GenerationParams{Model: "claude-3-opus-20240229"})

	require.NoError(t, err)
	assert.Equal(t, providers.FamilyGroq, resp.Provider)
	assert.Equal(t, "llama-3.3-70b-versatile", provider.lastReq.Model)
}

func TestGenerateCompletion_RetriesTransientFailures(t *testing.T) {
	provider := &scriptedProvider{
		name:     providers.FamilyOpenAI,
		failures: 2,
		err:      providers.NewProviderError("openai", "rate limit", 429, nil),
	}
	service := newTestService(routing.Config{}, provider)

	resp, err := service.GenerateCompletion(context.Background(),
		[]providers.Message{{Role: "user", Content: "hi"}},
		GenerationParams{Model: "gpt-4"})

	require.NoError(t, err)
	assert.Equal(t, 3, provider.calls)
	assert.Equal(t, "generated", resp.Content)
}

func TestGenerateCompletion_ExhaustionSurfacesLastError(t *testing.T) {
	providerErr := providers.NewProviderError("openai", "rate limit", 429, nil)
	provider := &scriptedProvider{
		name:     providers.FamilyOpenAI,
		failures: 10,
		err:      providerErr,
	}
	service := newTestService(routing.Config{}, provider)

	_, err := service.GenerateCompletion(context.Background(),
		[]providers.Message{{Role: "user", Content: "hi"}},
		GenerationParams{Model: "gpt-4"})

	require.Error(t, err)
	assert.Equal(t, 3, provider.calls)

	var got *providers.ProviderError
	require.ErrorAs(t, err, &got)
	assert.Same(t, providerErr, got)
}

func TestGenerateCompletion_NoProviders(t *testing.T) {
	service := newTestService(routing.Config{})

	_, err := service.GenerateCompletion(context.Background(),
		[]providers.Message{{Role: "user", Content: "hi"}},
		GenerationParams{Model: "gpt-4"})

	require.Error(t, err)
	assert.ErrorIs(t, err, routing.ErrNoProvidersAvailable)
	assert.True(t, services.IsErrorType(err, services.ErrorTypeConfiguration))
}

func TestGenerateCompletion_ExtraParamsForwarded(t *testing.T) {
	provider := &scriptedProvider{name: providers.FamilyOpenAI}
	service := newTestService(routing.Config{}, provider)

	_, err := service.GenerateCompletion(context.Background(),
		[]providers.Message{{Role: "user", Content: "hi"}},
		GenerationParams{
			Model: "gpt-4",
			Extra: map[string]interface{}{"top_p": 0.9},
		})

	require.NoError(t, err)
	assert.Equal(t, 0.9, provider.lastReq.Extra["top_p"])
}

func TestGenerateCompletion_ContextCancelled(t *testing.T) {
	provider := &scriptedProvider{
		name:     providers.FamilyOpenAI,
		failures: 10,
		err:      errors.New("failure"),
	}

	registry := providers.NewRegistry()
	registry.Register(provider)
	router := routing.NewService(registry, routing.Config{}, zap.NewNop())
	service := NewService(router, RetryPolicy{
		MaxAttempts: 3,
		MinDelay:    time.Hour,
		MaxDelay:    time.Hour,
	}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := service.GenerateCompletion(ctx,
		[]providers.Message{{Role: "user", Content: "hi"}},
		GenerationParams{Model: "gpt-4"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, provider.calls)
}
