// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	POST /v1/layout            JSON layout for {"words": [...], "options": {...}}
//	POST /v1/render/{format}   rendered artifact (svg, png, pdf, json) with an ETag
//	GET  /healthz              liveness probe
//	GET  /version              build information
//	GET  /metrics              Prometheus metrics
//
// Errors are returned as {"code": "...", "message": "..."} with a status
// derived from the error code.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/wordcast/pkg/buildinfo"
	"github.com/matzehuels/wordcast/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = ":8080"

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes = 1 << 20

	// DefaultMaxEvaluations is the per-request candidate budget used when
	// [Config.MaxEvaluations] is zero.
	DefaultMaxEvaluations = 5_000_000

	shutdownTimeout = 10 * time.Second
)

// Config configures a [Server].
type Config struct {
	Addr     string
	Runner   *pipeline.Runner
	Logger   *log.Logger
	Gatherer prometheus.Gatherer

	// MaxEvaluations caps the candidate tests of a single request. Requests
	// asking for no budget or a larger one get this value. Negative disables
	// the ceiling.
	MaxEvaluations int
}

// Server serves the HTTP API.
type Server struct {
	addr     string
	runner   *pipeline.Runner
	logger   *log.Logger
	gatherer prometheus.Gatherer
	maxEvals int
	router   chi.Router
}

// New builds a server. Missing fields get defaults: [DefaultAddr], a runner
// with the embedded fonts, a discarding logger, the default Prometheus
// gatherer and [DefaultMaxEvaluations].
func New(cfg Config) *Server {
	s := &Server{
		addr:     cfg.Addr,
		runner:   cfg.Runner,
		logger:   cfg.Logger,
		gatherer: cfg.Gatherer,
		maxEvals: cfg.MaxEvaluations,
	}
	if s.addr == "" {
		s.addr = DefaultAddr
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.runner == nil {
		s.runner = pipeline.NewRunner(nil, s.logger)
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	if s.maxEvals == 0 {
		s.maxEvals = DefaultMaxEvaluations
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	})
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, buildinfo.Get())
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render/{format}", s.handleRender)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like [Server.ListenAndServe] on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errCh
	return nil
}
