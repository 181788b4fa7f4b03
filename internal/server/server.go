// Package server provides the storefront search HTTP API.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hyperjump/storefront/internal/config"
	"github.com/hyperjump/storefront/internal/indexer"
	"github.com/hyperjump/storefront/internal/metrics"
	"github.com/hyperjump/storefront/internal/search"
	"github.com/hyperjump/storefront/internal/storage"
)

// StatusProvider reports on the served catalogue; *indexer.Indexer implements it.
type StatusProvider interface {
	Status() *indexer.Status
}

// Server is the HTTP server for the storefront search API.
type Server struct {
	engine    *search.Engine
	status    StatusProvider
	searchLog storage.SearchLog // nil when analytics are disabled
	config    *config.ServerConfig
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies. status and
// searchLog may be nil.
func NewServer(
	engine *search.Engine,
	status StatusProvider,
	searchLog storage.SearchLog,
	cfg *config.ServerConfig,
	logger *zap.Logger,
) *Server {
	return &Server{
		engine:    engine,
		status:    status,
		searchLog: searchLog,
		config:    cfg,
		logger:    logger,
	}
}

// Handler returns the routed API handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(metrics.Middleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/search", s.handleSearch)
		r.Post("/search", s.handleSearchJSON)
		r.Get("/search/products", s.handleSearchProducts)
		r.Get("/search/categories", s.handleSearchCategories)
		r.Get("/suggest", s.handleSuggest)
		r.Get("/stats", s.handleStats)
		r.Get("/categories", s.handleCategories)
		r.Get("/categories/{idOrSlug}/products", s.handleCategoryProducts)
		r.Get("/products/{idOrSlug}", s.handleProduct)
		r.Get("/analytics/queries", s.handleAnalyticsQueries)
	})
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
