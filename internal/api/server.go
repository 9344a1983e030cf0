// Package api exposes the comparison engine and step ingestion over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"shotdiff.dev/pkg/shotdiff/internal/adapter"
	"shotdiff.dev/pkg/shotdiff/internal/domain"
)

// stepCacheControl marks step comparisons as immutable; recorded steps never change.
const stepCacheControl = "public, max-age=31557600"

// DefaultMaxBodyBytes caps a POST /api/steps body when no limit is configured.
const DefaultMaxBodyBytes int64 = 32 << 20

// Server routes HTTP requests to the store, the comparator and the recorder.
type Server struct {
	store        adapter.Store
	comparator   domain.Comparator
	recorder     domain.Recorder
	maxBodyBytes int64
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithMaxBodyBytes limits the size of an ingested step body. Values <= 0 keep the default.
func WithMaxBodyBytes(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// NewServer creates a Server.
func NewServer(store adapter.Store, comparator domain.Comparator, recorder domain.Recorder, opts ...ServerOption) *Server {
	s := &Server{
		store:        store,
		comparator:   comparator,
		recorder:     recorder,
		maxBodyBytes: DefaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Routes builds the router with its middleware stack.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/runs", func(r chi.Router) {
			r.Get("/", s.handleListRuns)
			r.Get("/{id}/test-cases", s.handleRunTestCases)
			r.Get("/{id}/{otherID}/diff", s.handleRunDiff)
			r.Get("/{id}/{otherID}/line", s.handleRunDiffLine)
		})

		r.Get("/test-cases/{id}/{otherID}/diff", s.handleTestCaseDiff)

		r.Route("/steps", func(r chi.Router) {
			r.Post("/", s.handleRecordStep)
			r.Get("/{id}", s.handleGetStep)
			r.Get("/{id}/{otherID}", s.handleStepChanges)
			r.Get("/{id}/{otherID}/image", s.handleStepImage)
		})
	})

	return r
}

// NewHTTPServer wraps handler with the timeouts used by the serve command.
func NewHTTPServer(address string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
