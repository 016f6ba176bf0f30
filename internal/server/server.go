// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/ppiankov/clearview/internal/llm"
	"github.com/ppiankov/clearview/internal/model"
	"github.com/ppiankov/clearview/internal/pipeline"
)

// Version is the API version reported by health and root endpoints
const Version = "1.0.0"

// Analyzer is the slice of the pipeline the server needs
type Analyzer interface {
	Analyze(ctx context.Context, req pipeline.AnalyzeRequest) (*model.Report, error)
	FetchArticle(ctx context.Context, url string) (*pipeline.FetchResult, error)
	LLMReady() bool
	FREDConfigured() bool
}

// Server wires the pipeline into an HTTP API
type Server struct {
	pipeline Analyzer
	config   *model.Config
	router   *mux.Router
	logger   *log.Logger
}

// New creates a server around an initialized pipeline
func New(p Analyzer, cfg *model.Config) *Server {
	s := &Server{
		pipeline: p,
		config:   cfg,
		router:   mux.NewRouter(),
		logger:   log.New(os.Stderr, "server: ", log.LstdFlags),
	}

	s.router.Use(corsMiddleware)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/analyse", s.handleAnalyse).Methods("POST", "OPTIONS")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleRoot).Methods("GET")

	return s
}

// Handler returns the root HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the HTTP server until the context is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute, // Analysis calls are slow
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", s.config.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// analyseRequest is the POST /api/analyse payload. Either article_text or
// article_url must be provided.
type analyseRequest struct {
	ArticleText string `json:"article_text"`
	ArticleURL  string `json:"article_url,omitempty"`
	Headline    string `json:"headline,omitempty"`
	Source      string `json:"source,omitempty"`
}

func (s *Server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	if !s.pipeline.LLMReady() {
		respondError(w, http.StatusServiceUnavailable, "LLM provider not configured")
		return
	}

	var req analyseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	text := strings.TrimSpace(req.ArticleText)
	headline := req.Headline
	source := req.Source

	if text == "" && req.ArticleURL != "" {
		fetched, err := s.pipeline.FetchArticle(r.Context(), req.ArticleURL)
		if err != nil {
			respondError(w, http.StatusBadGateway, "could not fetch article: "+err.Error())
			return
		}
		text = strings.TrimSpace(fetched.Text)
		if headline == "" {
			headline = fetched.Headline
		}
		if source == "" {
			source = fetched.Source
		}
	}

	if n := len(text); n < s.config.Server.MinArticleLen || n > s.config.Server.MaxArticleLen {
		respondError(w, http.StatusUnprocessableEntity, "article_text length out of bounds")
		return
	}

	report, err := s.pipeline.Analyze(r.Context(), pipeline.AnalyzeRequest{
		ArticleText: text,
		Headline:    headline,
		Source:      source,
	})
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrMalformedAnalysis):
			respondError(w, http.StatusInternalServerError, "Analysis engine returned malformed output. Please try again.")
		case errors.Is(err, pipeline.ErrNoProvider):
			respondError(w, http.StatusServiceUnavailable, "LLM provider not configured")
		default:
			s.logger.Printf("analysis failed: %v", err)
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	message := "ClearView API is running"
	if !s.pipeline.LLMReady() {
		message = "WARNING: LLM API key missing"
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"version":   Version,
		"llm_ready": s.pipeline.LLMReady(),
		"fred_key":  s.pipeline.FREDConfigured(),
		"message":   message,
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "ClearView API",
		"version": Version,
		"health":  "/api/health",
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
