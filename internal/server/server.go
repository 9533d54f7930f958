// Package server assembles the HTTP router: middleware, ambient endpoints and
// the not-found page. Feature packages mount their pages via RegisterRoutes.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/zenmed-health/zenmed/internal/metrics"
	"github.com/zenmed-health/zenmed/internal/session"
	"github.com/zenmed-health/zenmed/internal/view"
)

// Config holds server configuration.
type Config struct {
	Addr           string // listen address, host:port
	AllowAll       bool   // allow all CORS origins (dev mode)
	MetricsEnabled bool   // serve /metrics
}

// Server is the ZenMed web server.
type Server struct {
	cfg        Config
	views      *view.Renderer
	sessions   *session.Manager
	metrics    *metrics.Metrics
	logger     zerolog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with its middleware stack and ambient routes.
func New(cfg Config, views *view.Renderer, sessions *session.Manager, m *metrics.Metrics, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		views:    views,
		sessions: sessions,
		metrics:  m,
		logger:   logger,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(s.logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.cfg.MetricsEnabled && s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	}

	r.Get("/static/app.css", s.views.ServeCSS)

	// Every undeclared path renders the not-found page, which sits outside
	// the dashboard frame like any public page. A path known only for
	// another method is undeclared too.
	notFound := s.sessions.Middleware(http.HandlerFunc(s.handleNotFound)).ServeHTTP
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.metrics.IncPageView("not-found")
	s.views.NotFound(w, s.sessions.EnterPublic(r.Context()))
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Pages returns a router for page routes; it carries the session middleware.
func (s *Server) Pages() chi.Router {
	return s.router.With(s.sessions.Middleware)
}

// Start begins listening on the configured address. It returns nil after a
// graceful Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info().Str("addr", s.cfg.Addr).Msg("zenmed server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
