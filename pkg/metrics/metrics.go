package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the application.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	FetchesTotal        *prometheus.CounterVec
	FetchDuration       *prometheus.HistogramVec
	AnalysesTotal       *prometheus.CounterVec
	FindingsTotal       *prometheus.CounterVec
}

// New registers the collectors with reg. Use prometheus.DefaultRegisterer in
// production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		FetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "page_fetches_total",
				Help: "Total number of page fetch attempts.",
			},
			[]string{"status", "error_type"}, // status: success, failure
		),
		FetchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "page_fetch_duration_seconds",
				Help:    "Duration of page fetches.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
			},
			[]string{"domain"},
		),
		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analyses_total",
				Help: "Total number of heuristic analyses by outcome.",
			},
			[]string{"outcome"}, // analyzed, short_circuit
		),
		FindingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "findings_total",
				Help: "Total number of findings emitted by category.",
			},
			[]string{"category"},
		),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// ObserveFetch records one fetch attempt. errorType is empty on success.
func (m *Metrics) ObserveFetch(domain, errorType string, seconds float64) {
	if m == nil {
		return
	}
	status := "success"
	if errorType != "" {
		status = "failure"
	}
	m.FetchesTotal.WithLabelValues(status, errorType).Inc()
	m.FetchDuration.WithLabelValues(domain).Observe(seconds)
}

func (m *Metrics) IncAnalyses(outcome string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) AddFindings(category string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.FindingsTotal.WithLabelValues(category).Add(float64(n))
}
