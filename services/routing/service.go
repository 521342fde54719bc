package routing

import (
	"strings"

	"go.uber.org/zap"

	"github.com/codessneha/synthia/services"
	"github.com/codessneha/synthia/services/providers"
)

// ErrNoProvidersAvailable is returned when no provider family is registered.
var ErrNoProvidersAvailable = services.NewConfigurationError(
	"no LLM providers initialized, check your API keys", nil)

// Rule maps a model-identifier prefix to its native provider family.
type Rule struct {
	Prefix string
	Family string
}

// DefaultRules covers the naming schemes of the supported families. The table
// is open: adding a provider means adding entries here and an adapter.
func DefaultRules() []Rule {
	return []Rule{
		{Prefix: "gpt", Family: providers.FamilyOpenAI},
		{Prefix: "o1", Family: providers.FamilyOpenAI},
		{Prefix: "claude", Family: providers.FamilyAnthropic},
		{Prefix: "llama", Family: providers.FamilyGroq},
		{Prefix: "mixtral", Family: providers.FamilyGroq},
		{Prefix: "gemma", Family: providers.FamilyGroq},
	}
}

// DefaultFallbackOrder lists families by configuration preference, tried in
// order when the requested model's native family is unavailable.
func DefaultFallbackOrder() []string {
	return []string{
		providers.FamilyGroq,
		providers.FamilyOpenAI,
		providers.FamilyAnthropic,
	}
}

// Config holds routing configuration
type Config struct {
	// Rules is the prefix classification table; DefaultRules when empty
	Rules []Rule

	// FallbackOrder is the fixed fallback priority; DefaultFallbackOrder when empty
	FallbackOrder []string

	// DefaultModels maps a family to the model substituted on fallback
	DefaultModels map[string]string
}

// Service decides which provider family handles a completion call
type Service struct {
	registry      *providers.Registry
	rules         []Rule
	fallbackOrder []string
	defaultModels map[string]string
	logger        *zap.Logger
}

// NewService creates a routing service backed by the given registry
func NewService(registry *providers.Registry, cfg Config, logger *zap.Logger) *Service {
	rules := cfg.Rules
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	fallbackOrder := cfg.FallbackOrder
	if len(fallbackOrder) == 0 {
		fallbackOrder = DefaultFallbackOrder()
	}

	return &Service{
		registry:      registry,
		rules:         rules,
		fallbackOrder: fallbackOrder,
		defaultModels: cfg.DefaultModels,
		logger:        logger,
	}
}

// ClassifyModel infers the native provider family from the model identifier's
// naming convention. ok is false when no rule matches.
func (s *Service) ClassifyModel(model string) (string, bool) {
	for _, rule := range s.rules {
		if strings.HasPrefix(model, rule.Prefix) {
			return rule.Family, true
		}
	}
	return "", false
}

// Route selects the provider for the requested model and returns the model
// identifier to send. When the native family is registered the identifier
// passes through unchanged; otherwise the first available fallback family is
// chosen and its default model substituted. Unknown identifiers are never an
// error: they route via fallback like any other unavailable family.
func (s *Service) Route(model string) (providers.Provider, string, error) {
	family, known := s.ClassifyModel(model)
	if known {
		if provider, ok := s.registry.Get(family); ok {
			return provider, model, nil
		}
	}

	for _, fallback := range s.fallbackOrder {
		provider, ok := s.registry.Get(fallback)
		if !ok {
			continue
		}

		target := s.defaultModels[fallback]
		if known && family == fallback {
			target = model
		}
		if target == "" {
			target = model
		}

		s.logger.Info("model requested but provider not available or unknown, falling back",
			zap.String("requested_model", model),
			zap.String("substituted_model", target),
			zap.String("provider", fallback))

		return provider, target, nil
	}

	return nil, "", ErrNoProvidersAvailable
}
