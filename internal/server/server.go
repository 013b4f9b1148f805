// Package server exposes the chart pipeline over HTTP for the admin UI.
//
// Endpoints:
//
//	GET /healthz                - liveness check
//	GET /v1/chart.svg           - rendered SVG
//	GET /v1/chart.png           - rendered PNG (requires librsvg)
//	GET /v1/chart.pdf           - rendered PDF (requires librsvg)
//	GET /v1/chart.json          - figure scene graph as JSON
//
// Chart options are passed as query parameters (window, theme, width,
// height, inner, padding, ticks, series-order). Errors are returned as a
// JSON envelope carrying the machine-readable error code.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/precastlab/qcradial/pkg/buildinfo"
	"github.com/precastlab/qcradial/pkg/pipeline"
)

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	runner   *pipeline.Runner
	endpoint string
	logger   *log.Logger
	base     pipeline.Options
}

// Option configures a Server.
type Option func(*Server)

// WithBaseOptions sets the pipeline options every request starts from.
// Query parameters override individual fields.
func WithBaseOptions(opts pipeline.Options) Option {
	return func(s *Server) { s.base = opts }
}

// New creates a configured API server with all routes and middleware.
// The runner carries the cache; endpoint is the upstream observation feed.
func New(runner *pipeline.Runner, endpoint string, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner:   runner,
		endpoint: endpoint,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

// Router returns the chi router, primarily for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and shuts it down gracefully when
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/chart.svg", s.handleChart(pipeline.FormatSVG))
		r.Get("/chart.png", s.handleChart(pipeline.FormatPNG))
		r.Get("/chart.pdf", s.handleChart(pipeline.FormatPDF))
		r.Get("/chart.json", s.handleChart(pipeline.FormatJSON))
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}
