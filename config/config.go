package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Environment   string
	Server        ServerConfig
	Providers     ProvidersConfig
	Observability ObservabilityConfig
	Limits        LimitsConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// ProvidersConfig holds LLM provider configurations. A family with an empty
// APIKey stays unregistered for the lifetime of the process.
type ProvidersConfig struct {
	OpenAI    ProviderConfig
	Anthropic ProviderConfig
	Groq      ProviderConfig
}

// ProviderConfig holds configuration for one provider family
type ProviderConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	Timeout      time.Duration
}

// ObservabilityConfig holds logging configuration
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string // json or text
}

// LimitsConfig holds request processing limits
type LimitsConfig struct {
	MaxMessageLength int
	MaxPaperLength   int
	MaxPapersPerCall int
}

// New creates a Config by loading environment variables, with .env support
func New() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("PORT", 8001),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:     getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
		Providers: ProvidersConfig{
			OpenAI: ProviderConfig{
				APIKey:       getEnv("OPENAI_API_KEY", ""),
				BaseURL:      getEnv("OPENAI_BASE_URL", ""),
				DefaultModel: getEnv("OPENAI_MODEL", "gpt-4"),
				Timeout:      getEnvAsDuration("OPENAI_TIMEOUT", 60*time.Second),
			},
			Anthropic: ProviderConfig{
				APIKey:       getEnv("ANTHROPIC_API_KEY", ""),
				BaseURL:      getEnv("ANTHROPIC_BASE_URL", ""),
				DefaultModel: getEnv("ANTHROPIC_MODEL", "claude-3-sonnet-20240229"),
				Timeout:      getEnvAsDuration("ANTHROPIC_TIMEOUT", 60*time.Second),
			},
			Groq: ProviderConfig{
				APIKey:       getEnv("GROQ_API_KEY", ""),
				BaseURL:      getEnv("GROQ_BASE_URL", ""),
				DefaultModel: getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
				Timeout:      getEnvAsDuration("GROQ_TIMEOUT", 60*time.Second),
			},
		},
		Observability: ObservabilityConfig{
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "json"),
		},
		Limits: LimitsConfig{
			MaxMessageLength: getEnvAsInt("MAX_MESSAGE_LENGTH", 5000),
			MaxPaperLength:   getEnvAsInt("MAX_PAPER_LENGTH", 50000),
			MaxPapersPerCall: getEnvAsInt("MAX_PAPERS_PER_SESSION", 10),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate performs sanity checks on the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %d", c.Server.Port)
	}

	switch c.Observability.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Observability.LogFormat)
	}

	if c.Limits.MaxMessageLength <= 0 {
		return fmt.Errorf("MAX_MESSAGE_LENGTH must be positive, got %d", c.Limits.MaxMessageLength)
	}
	if c.Limits.MaxPapersPerCall <= 0 {
		return fmt.Errorf("MAX_PAPERS_PER_SESSION must be positive, got %d", c.Limits.MaxPapersPerCall)
	}

	return nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
