package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/document"
	"github.com/dgallion1/doclens/internal/lexicon"
	"github.com/dgallion1/doclens/internal/pipeline"
)

// Server is the HTTP API server for doclens.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	lex          *lexicon.Lexicon
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, lex *lexicon.Lexicon, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		lex:          lex,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints. Auth is disabled when no key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/analyze", s.handleAnalyze)
		r.Get("/api/analyze/{jobID}/status", s.handleAnalyzeStatus)
		r.Get("/api/analyze/{jobID}/report", s.handleAnalyzeReport)

		r.Post("/api/summarize", s.handleSummarize)
		r.Post("/api/rewrite", s.handleRewrite)

		r.Get("/api/stats/analysis", s.handleAnalysisStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// defaultOptions builds the analysis options baseline from server config.
func (s *Server) defaultOptions() document.Options {
	opts := document.DefaultOptions()
	opts.TargetTone = document.Tone(s.cfg.DefaultTargetTone)
	opts.DetailLevel = document.DetailLevel(s.cfg.DefaultDetailLevel)
	opts.TargetSectionLength = s.cfg.DefaultTargetSectionLength
	opts.MinSections = s.cfg.DefaultMinSections
	opts.MaxSections = s.cfg.DefaultMaxSections
	opts.MaxToneShifts = s.cfg.DefaultMaxToneShifts
	opts.MaxRewriteIterations = s.cfg.DefaultRewriteIterations
	return opts.Normalize()
}
