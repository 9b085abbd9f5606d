package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/user/site-analyzer/internal/delivery/http/handler"
	"github.com/user/site-analyzer/internal/delivery/http/middleware"
	"github.com/user/site-analyzer/pkg/logger"
	"github.com/user/site-analyzer/pkg/metrics"
)

// Deps holds what the router needs beyond the handler.
type Deps struct {
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
}

func New(h *handler.Handler, deps Deps) http.Handler {
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}
	if deps.RequestTimeout <= 0 {
		deps.RequestTimeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger.OrNop(deps.Logger)))
	r.Use(middleware.Metrics(deps.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(deps.RequestTimeout))

	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	r.Get("/api/health", h.HandleHealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Post("/extract", h.HandleExtract)
		r.Post("/analyze", h.HandleAnalyze)
		r.Post("/report", h.HandleReport)
	})

	return r
}
