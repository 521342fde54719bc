package app

import (
	"go.uber.org/zap"

	"github.com/codessneha/synthia/config"
	"github.com/codessneha/synthia/handlers"
	"github.com/codessneha/synthia/services/analysis"
	"github.com/codessneha/synthia/services/chat"
	"github.com/codessneha/synthia/services/inference"
	"github.com/codessneha/synthia/services/providers"
	"github.com/codessneha/synthia/services/providers/anthropic"
	"github.com/codessneha/synthia/services/providers/groq"
	"github.com/codessneha/synthia/services/providers/openai"
	"github.com/codessneha/synthia/services/routing"
	"github.com/codessneha/synthia/services/writing"
)

// Dependencies holds all application dependencies. This is the central wiring
// point for dependency injection.
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	Registry  *providers.Registry
	Router    *routing.Service
	Inference *inference.Service
	Chat      *chat.Service
	Analysis  *analysis.Service
	Writing   *writing.Service

	HealthHandler   *handlers.HealthHandler
	ChatHandler     *handlers.ChatHandler
	AnalysisHandler *handlers.AnalysisHandler
	PaperHandler    *handlers.PaperHandler
	WritingHandler  *handlers.WritingHandler
}

// NewDependencies creates and wires up all application dependencies
func NewDependencies(cfg *config.Config, logger *zap.Logger) *Dependencies {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.initProviders(cfg)
	deps.initServices(cfg)
	deps.initHandlers(cfg)

	logger.Info("all dependencies initialized",
		zap.Strings("providers", deps.Registry.Families()))
	return deps
}

// initProviders builds the provider registry. A family is registered exactly
// when its API key is present; a missing key keeps the family out of the
// registry without failing the others.
func (d *Dependencies) initProviders(cfg *config.Config) {
	registry := providers.NewRegistry()

	if cfg.Providers.OpenAI.APIKey != "" {
		registry.Register(openai.New(providers.Config{
			APIKey:       cfg.Providers.OpenAI.APIKey,
			BaseURL:      cfg.Providers.OpenAI.BaseURL,
			DefaultModel: cfg.Providers.OpenAI.DefaultModel,
			Timeout:      cfg.Providers.OpenAI.Timeout,
		}))
		d.Logger.Info("OpenAI client initialized")
	}

	if cfg.Providers.Anthropic.APIKey != "" {
		registry.Register(anthropic.New(providers.Config{
			APIKey:       cfg.Providers.Anthropic.APIKey,
			BaseURL:      cfg.Providers.Anthropic.BaseURL,
			DefaultModel: cfg.Providers.Anthropic.DefaultModel,
			Timeout:      cfg.Providers.Anthropic.Timeout,
		}))
		d.Logger.Info("Anthropic client initialized")
	}

	if cfg.Providers.Groq.APIKey != "" {
		registry.Register(groq.New(providers.Config{
			APIKey:       cfg.Providers.Groq.APIKey,
			BaseURL:      cfg.Providers.Groq.BaseURL,
			DefaultModel: cfg.Providers.Groq.DefaultModel,
			Timeout:      cfg.Providers.Groq.Timeout,
		}))
		d.Logger.Info("Groq client initialized")
	}

	if registry.Count() == 0 {
		d.Logger.Warn("no LLM providers configured, completion calls will fail")
	}

	d.Registry = registry
}

func (d *Dependencies) initServices(cfg *config.Config) {
	d.Router = routing.NewService(d.Registry, routing.Config{
		DefaultModels: map[string]string{
			providers.FamilyOpenAI:    cfg.Providers.OpenAI.DefaultModel,
			providers.FamilyAnthropic: cfg.Providers.Anthropic.DefaultModel,
			providers.FamilyGroq:      cfg.Providers.Groq.DefaultModel,
		},
	}, d.Logger)

	d.Inference = inference.NewService(d.Router, inference.DefaultRetryPolicy(), d.Logger)
	d.Chat = chat.NewService(d.Inference, cfg.Providers.OpenAI.DefaultModel, d.Logger)
	d.Analysis = analysis.NewService(d.Inference, cfg.Providers.OpenAI.DefaultModel, d.Logger)
	d.Writing = writing.NewService(d.Inference, cfg.Providers.OpenAI.DefaultModel, d.Logger)
}

func (d *Dependencies) initHandlers(cfg *config.Config) {
	d.HealthHandler = handlers.NewHealthHandler(handlers.ServiceInfo{
		Name:        "synthia-ai-service",
		Version:     "1.0.0",
		Environment: cfg.Environment,
		Providers:   d.Registry.Families(),
	})
	d.ChatHandler = handlers.NewChatHandler(d.Chat, d.Logger)
	d.AnalysisHandler = handlers.NewAnalysisHandler(d.Analysis, d.Logger)
	d.PaperHandler = handlers.NewPaperHandler(d.Analysis, d.Logger)
	d.WritingHandler = handlers.NewWritingHandler(d.Writing, d.Logger)
}

// Close flushes buffered log entries
func (d *Dependencies) Close() {
	if d.Logger != nil {
		_ = d.Logger.Sync()
	}
}
