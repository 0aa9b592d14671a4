// Package server exposes the gauge pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                  liveness probe, answers "ok"
//	GET  /v1/palettes              gradient palette names
//	GET  /v1/gauge.{format}        render from query parameters
//	POST /v1/render                render from a JSON [pipeline.Options] body
//
// Query parameters mirror the CLI flags:
//
//	/v1/gauge.svg?value=80&max=220&title=Speed&unit=km/h&color=limegreen&gradient=true
//
// Every response carries an X-Request-ID. Artifacts carry a strong ETag and
// honor If-None-Match. Errors are JSON objects with a machine-readable code:
//
//	{"code": "INVALID_SCALE", "message": "max must be positive, got 0"}
//
// The server shares one [pipeline.Runner] (and therefore one cache) across
// requests; handlers never hold state of their own.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/speedo/pkg/buildinfo"
	"github.com/matzehuels/speedo/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address when none is given.
	DefaultAddr = ":8080"

	// DefaultTimeout bounds a single request, PDF conversion included.
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes bounds POST bodies. Options are a few hundred bytes.
	maxBodyBytes = 64 << 10

	shutdownTimeout = 10 * time.Second
)

// Server renders gauges on request.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	timeout time.Duration
	router  chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to the runner's logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New creates a server backed by runner. A nil runner renders without caching.
func New(runner *pipeline.Runner, opts ...Option) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, nil)
	}
	s := &Server{
		runner:  runner,
		logger:  runner.Logger,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.SetHeader("Server", buildinfo.ServerHeader()))
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(s.recoverer)
	r.Use(middleware.Timeout(s.timeout))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", r.Method+" not allowed on "+r.URL.Path)
	})

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/palettes", s.handlePalettes)
		r.Get("/gauge.{format}", s.handleGauge)
		r.Post("/render", s.handleRender)
	})
	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully, letting in-flight renders finish.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
