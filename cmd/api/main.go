package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/user/site-analyzer/internal/adapter/httpfetch"
	"github.com/user/site-analyzer/internal/delivery/http/handler"
	"github.com/user/site-analyzer/internal/delivery/http/router"
	"github.com/user/site-analyzer/internal/usecase"
	"github.com/user/site-analyzer/pkg/config"
	"github.com/user/site-analyzer/pkg/logger"
	"github.com/user/site-analyzer/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// --- Metrics ---
	m := metrics.New(prometheus.DefaultRegisterer)

	// --- Pipeline ---
	fetcher, err := httpfetch.New(httpfetch.Options{
		Timeout:      cfg.FetchTimeoutDuration(),
		UserAgent:    cfg.FetchUserAgent,
		MaxRedirects: cfg.FetchMaxRedirects,
		MaxBodyBytes: cfg.FetchMaxBodyBytes,
		Proxies:      cfg.ProxyList(),
	}, log.Named("fetcher"))
	if err != nil {
		log.Fatal("could not create fetcher", zap.Error(err))
	}

	pipeline := usecase.NewPipeline(
		fetcher,
		usecase.NewCategorizer(log.Named("categorizer")),
		usecase.NewAnalyzer(),
		usecase.WithLogger(log.Named("pipeline")),
		usecase.WithMetrics(m),
	)

	// --- HTTP Server ---
	apiHandler := handler.NewHandler(pipeline, log.Named("http"))
	httpRouter := router.New(apiHandler, router.Deps{
		Logger:         log.Named("http"),
		Metrics:        m,
		Gatherer:       prometheus.DefaultGatherer,
		RequestTimeout: cfg.RequestTimeoutDuration(),
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           httpRouter,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeoutDuration() + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful Shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("could not start server", zap.Error(err))
		}
	}()

	log.Info("server started",
		zap.String("port", cfg.ServerPort),
		zap.Duration("fetch_timeout", cfg.FetchTimeoutDuration()),
		zap.Int("proxies", len(cfg.ProxyList())),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("server exiting")
}
