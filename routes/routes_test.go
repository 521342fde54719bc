package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/codessneha/synthia/app"
	"github.com/codessneha/synthia/config"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg, err := config.New()
	require.NoError(t, err)
	cfg.Providers.OpenAI.APIKey = ""
	cfg.Providers.Anthropic.APIKey = ""
	cfg.Providers.Groq.APIKey = ""

	return SetupRoutes(app.NewDependencies(cfg, zap.NewNop()))
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestRootEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "endpoint not found")
}

func TestAPIRoutesRegistered(t *testing.T) {
	router := testRouter(t)

	paths := []string{
		"/api/v1/chat/completion",
		"/api/v1/chat/summarize",
		"/api/v1/chat/suggest-questions",
		"/api/v1/analysis/compare",
		"/api/v1/analysis/summarize",
		"/api/v1/analysis/gap-analysis",
		"/api/v1/analysis/extract-methodology",
		"/api/v1/analysis/key-insights",
		"/api/v1/analysis/trends",
		"/api/v1/papers/analyze-structure",
		"/api/v1/papers/analyze-methodology",
		"/api/v1/papers/analyze-clarity",
		"/api/v1/papers/analyze-academic-tone",
		"/api/v1/writing/analyze-writing",
		"/api/v1/writing/paraphrase",
		"/api/v1/writing/improve-sentence",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			// Registered routes never 404; empty bodies fail validation instead
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
		})
	}
}
