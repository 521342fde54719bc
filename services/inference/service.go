package inference

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/codessneha/synthia/services/providers"
	"github.com/codessneha/synthia/services/routing"
)

// GenerationParams carries the per-request generation settings. Values are
// forwarded to the provider without clamping; out-of-range values surface as
// provider call failures.
type GenerationParams struct {
	// Model is the requested identifier; the router may substitute it
	Model string

	// Temperature in [0.0, 2.0]
	Temperature float64

	// MaxTokens limits the completion length
	MaxTokens int

	// Extra is passed through verbatim to the provider
	Extra map[string]interface{}
}

// Service routes completion calls to a provider and retries transient
// failures. The registry behind the router is read-only after startup, so
// concurrent calls share no mutable state.
type Service struct {
	router *routing.Service
	retry  RetryPolicy
	logger *zap.Logger
}

// NewService creates an inference service
func NewService(router *routing.Service, retry RetryPolicy, logger *zap.Logger) *Service {
	return &Service{
		router: router,
		retry:  retry,
		logger: logger,
	}
}

// GenerateCompletion dispatches a completion call through the router to the
// selected provider adapter. The whole route-and-dispatch path sits inside
// the retry policy; the final failure propagates to the caller unchanged and
// is never replaced by a placeholder result.
func (s *Service) GenerateCompletion(ctx context.Context, messages []providers.Message, params GenerationParams) (*providers.ChatResponse, error) {
	inferenceID := uuid.New().String()

	var resp *providers.ChatResponse

	err := s.retry.Do(ctx, func(ctx context.Context) error {
		provider, model, err := s.router.Route(params.Model)
		if err != nil {
			return err
		}

		result, err := provider.Complete(ctx, &providers.ChatRequest{
			Model:       model,
			Messages:    messages,
			Temperature: params.Temperature,
			MaxTokens:   params.MaxTokens,
			Extra:       params.Extra,
		})
		if err != nil {
			return err
		}

		resp = result
		return nil
	})
	if err != nil {
		s.logger.Error("LLM generation failed",
			zap.String("inference_id", inferenceID),
			zap.String("model", params.Model),
			zap.Error(err))
		return nil, err
	}

	s.logger.Debug("completion generated",
		zap.String("inference_id", inferenceID),
		zap.String("provider", resp.Provider),
		zap.String("model", resp.Model),
		zap.Int("tokens", resp.Tokens),
		zap.String("finish_reason", resp.FinishReason))

	return resp, nil
}
