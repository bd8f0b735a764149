// Package server assembles the HTTP side of the service: the chi
// router, its middleware chain, the route table, and lifecycle control
// for startup and graceful shutdown.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/almroth/fasskollen/config"
	"github.com/almroth/fasskollen/handlers"
	"github.com/almroth/fasskollen/health"
	"github.com/almroth/fasskollen/interfaces"
	"github.com/almroth/fasskollen/logging"
	"github.com/almroth/fasskollen/metrics"
	"github.com/almroth/fasskollen/validation"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// Server owns the HTTP listener and everything mounted on it.
type Server struct {
	server        *http.Server
	router        chi.Router
	catalog       interfaces.Catalog
	config        *config.Config
	httpHandler   interfaces.HTTPHandler
	healthChecker interfaces.HealthChecker
	limiter       *RateLimiter
}

// NewServer wires the catalog into the handler stack, mounts the
// middleware chain and routes, and returns a server ready to Start.
func NewServer(cfg *config.Config, catalog interfaces.Catalog) *Server {
	router := chi.NewRouter()

	validator := validation.NewQueryValidator()
	healthChecker := health.NewHealthChecker(catalog)
	httpHandler := handlers.NewHTTPHandler(catalog, validator, healthChecker)

	s := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         net.JoinHostPort(cfg.Address, cfg.Port),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		router:        router,
		catalog:       catalog,
		config:        cfg,
		httpHandler:   httpHandler,
		healthChecker: healthChecker,
		limiter:       NewRateLimiter(cfg.RateLimitRate, cfg.RateLimitBurst),
	}

	s.mountMiddleware()
	s.mountRoutes()

	return s
}

// mountMiddleware installs the chain. Order matters here: request IDs
// and client IPs must exist before the access log runs, and rate
// limiting sits last so rejected requests still show up in the log and
// the metrics.
func (s *Server) mountMiddleware() {
	s.router.Use(RequestIDMiddleware)
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(logging.DefaultLoggingService.Logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.router.Use(metrics.Metrics)
	s.router.Use(RateLimitMiddleware(s.limiter))
}

func (s *Server) mountRoutes() {
	s.router.Get("/", s.httpHandler.ServeIndex)
	s.router.Get("/medications", s.httpHandler.ServeMedications)
	s.router.Get("/medications/{key}", s.httpHandler.ServeMedicationByKey)
	s.router.Get("/resolve/{query}", s.httpHandler.ResolveMedication)
	s.router.Get("/atc/{code}", s.httpHandler.ServeMedicationsByATC)
	s.router.Get("/report/{query}", s.httpHandler.ServeReport)
	s.router.Get("/health", s.httpHandler.HealthCheck)
	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// Start begins serving and blocks until the listener stops. In dev it
// also brings up pprof on localhost:6060.
func (s *Server) Start() error {
	if s.config.Env == config.EnvDevelopment {
		go func() {
			logging.Info("pprof listening on localhost:6060")
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				logging.Error("pprof server failed", "error", err)
			}
		}()
	}

	logging.Info("Starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener. If the
// context expires before the drain finishes the server is closed hard.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Graceful shutdown failed, closing", "error", err)
		if closeErr := s.server.Close(); closeErr != nil {
			return closeErr
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}
