package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/user/expose-extractor/internal/config"
	"github.com/user/expose-extractor/internal/domain"
	"github.com/user/expose-extractor/internal/monitoring"
)

// Extractor turns a listing URL into property figures.
type Extractor interface {
	Extract(ctx context.Context, rawURL string) (*domain.PropertyData, error)
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	config     *config.Config
	router     http.Handler
	httpServer *http.Server
	extractor  Extractor
	metrics    *monitoring.Metrics
	gatherer   prometheus.Gatherer
	logger     *zap.Logger
}

func NewServer(cfg *config.Config, ex Extractor, m *monitoring.Metrics, g prometheus.Gatherer, l *zap.Logger) *Server {
	s := &Server{
		config:    cfg,
		extractor: ex,
		metrics:   m,
		gatherer:  g,
		logger:    l,
	}
	s.router = s.setupRouter()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.ServerPort),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.FetchTimeoutDuration() + 10*time.Second,
	}
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
