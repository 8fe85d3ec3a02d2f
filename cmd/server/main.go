package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/user/expose-extractor/internal/api"
	"github.com/user/expose-extractor/internal/config"
	"github.com/user/expose-extractor/internal/estimator"
	"github.com/user/expose-extractor/internal/extractor"
	"github.com/user/expose-extractor/internal/fetcher"
	"github.com/user/expose-extractor/internal/monitoring"
	"github.com/user/expose-extractor/internal/proxy"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("could not load config", zap.Error(err))
	}

	// Initialize structured logger
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	proxyManager, err := proxy.NewManager(cfg.Proxies())
	if err != nil {
		logger.Fatal("invalid proxy configuration", zap.Error(err))
	}

	// Initialize page fetcher
	var pageFetcher fetcher.Fetcher
	switch cfg.FetchMode {
	case "browser":
		var proxyServer string
		if p := proxyManager.GetProxy(); p != nil {
			proxyServer = p.String()
		}
		browser := fetcher.NewBrowserFetcher(cfg.UserAgent, proxyServer, logger)
		defer browser.Close()
		pageFetcher = browser
	case "http", "":
		pageFetcher = fetcher.NewHTTPFetcher(cfg.UserAgent, proxyManager)
	default:
		logger.Fatal("unknown fetch mode", zap.String("mode", cfg.FetchMode))
	}

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	est := estimator.New(cfg.Rates())
	service := extractor.NewService(pageFetcher, est, metrics, logger, cfg.FetchTimeoutDuration())

	// Initialize API Server
	server := api.NewServer(cfg, service, metrics, prometheus.DefaultGatherer, logger)

	// Graceful Shutdown
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started",
		zap.String("port", cfg.ServerPort),
		zap.String("fetch_mode", cfg.FetchMode),
		zap.Int("proxies", proxyManager.Len()),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}

func newLogger(level string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if level == "debug" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
