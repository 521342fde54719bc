package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/codessneha/synthia/app"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoints
	r.Get("/", deps.HealthHandler.HandleRoot)
	r.Get("/health", deps.HealthHandler.HandleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Post("/completion", deps.ChatHandler.HandleCompletion)
			r.Post("/summarize", deps.ChatHandler.HandleSummarize)
			r.Post("/suggest-questions", deps.ChatHandler.HandleSuggestQuestions)
		})

		r.Route("/analysis", func(r chi.Router) {
			r.Post("/compare", deps.AnalysisHandler.HandleCompare)
			r.Post("/summarize", deps.AnalysisHandler.HandleSummarize)
			r.Post("/gap-analysis", deps.AnalysisHandler.HandleGapAnalysis)
			r.Post("/extract-methodology", deps.AnalysisHandler.HandleExtractMethodology)
			r.Post("/key-insights", deps.AnalysisHandler.HandleKeyInsights)
			r.Post("/trends", deps.AnalysisHandler.HandleTrends)
		})

		r.Route("/papers", func(r chi.Router) {
			r.Post("/analyze-structure", deps.PaperHandler.HandleAnalyzeStructure)
			r.Post("/analyze-methodology", deps.PaperHandler.HandleAnalyzeMethodology)
			r.Post("/analyze-clarity", deps.PaperHandler.HandleAnalyzeClarity)
			r.Post("/analyze-academic-tone", deps.PaperHandler.HandleAnalyzeTone)
		})

		r.Route("/writing", func(r chi.Router) {
			r.Post("/analyze-writing", deps.WritingHandler.HandleAnalyzeWriting)
			r.Post("/paraphrase", deps.WritingHandler.HandleParaphrase)
			r.Post("/improve-sentence", deps.WritingHandler.HandleImproveSentence)
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"endpoint not found"}`))
	})

	return r
}
