// Package httpapi exposes the city network over JSON/HTTP.
//
// Routes:
//
//	GET /health
//	GET /api/cities
//	GET /api/route?from=&to=&algorithm=
//	GET /api/compare?from=&to=
//	GET /api/analysis
//	GET /api/nearest?lat=&lon=
//	GET /metrics
//
// Unknown or unreachable cities are not errors: the answer is an empty
// path with status 200. Malformed parameters yield 400.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/citypath/analysis"
	"github.com/katalvlaran/citypath/core"
	"github.com/katalvlaran/citypath/metrics"
	"github.com/katalvlaran/citypath/spatial"
)

// ShutdownTimeout bounds the graceful shutdown of ListenAndServe.
const ShutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	// Logger receives one Info record per request. Defaults to slog.Default().
	Logger *slog.Logger

	// Registry collects the query metrics served on /metrics.
	// Defaults to a fresh registry.
	Registry *prometheus.Registry

	// CORSOrigins lists allowed origins; "*" allows all.
	CORSOrigins []string
}

// Option represents a functional option for New.
type Option func(*Options)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegistry sets the metrics registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *Options) {
		if reg != nil {
			o.Registry = reg
		}
	}
}

// WithCORSOrigins sets the allowed origins. An empty list keeps the default.
func WithCORSOrigins(origins ...string) Option {
	return func(o *Options) {
		if len(origins) > 0 {
			o.CORSOrigins = append([]string(nil), origins...)
		}
	}
}

// DefaultOptions allows every origin and logs through slog.Default().
func DefaultOptions() Options {
	return Options{CORSOrigins: []string{"*"}}
}

// Server answers queries over one network. The network must not change
// while the server runs.
type Server struct {
	g        *core.Graph
	analyzer *analysis.Analyzer
	index    *spatial.Index
	logger   *slog.Logger
	engine   *gin.Engine
}

// New builds the gin engine for g.
func New(g *core.Graph, opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}

	s := &Server{
		g:        g,
		analyzer: analysis.NewAnalyzer(g, analysis.WithObserver(metrics.NewRecorder(o.Registry))),
		index:    spatial.NewIndex(g),
		logger:   o.Logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests(), cors.New(corsConfig(o.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	api := r.Group("/api")
	api.GET("/cities", s.handleCities)
	api.GET("/route", s.handleRoute)
	api.GET("/compare", s.handleCompare)
	api.GET("/analysis", s.handleAnalysis)
	api.GET("/nearest", s.handleNearest)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(o.Registry, promhttp.HandlerOpts{})))

	s.engine = r

	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.engine }

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins

	return cfg
}

// logRequests replaces gin's default logger with one slog record per request.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully, waiting at most ShutdownTimeout for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "cause", context.Cause(ctx))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
