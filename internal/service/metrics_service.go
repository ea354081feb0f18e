package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the portal API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	storeLatency    *prometheus.HistogramVec
	loginTotal      *prometheus.CounterVec
	submissionTotal prometheus.Counter

	requestCount         uint64
	requestDurationTotal uint64
	loginSuccessCount    uint64
	loginFailureCount    uint64
	submissionCount      uint64
}

// MetricsSnapshot is the aggregated view served by the status endpoint.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	LoginSuccesses           uint64    `json:"login_successes"`
	LoginFailures            uint64    `json:"login_failures"`
	SurveySubmissions        uint64    `json:"survey_submissions"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// NewMetricsService registers the portal's Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	storeLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Latency of storage backend operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	loginTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_logins_total",
		Help: "Login attempts by outcome",
	}, []string{"outcome"})

	submissionTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "survey_submissions_total",
		Help: "Total recorded survey submissions",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, storeLatency, loginTotal, submissionTotal, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		storeLatency:    storeLatency,
		loginTotal:      loginTotal,
		submissionTotal: submissionTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics and aggregates simple stats for
// the snapshot endpoint.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveStoreOperation records storage backend latency by operation label.
func (m *MetricsService) ObserveStoreOperation(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.storeLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordLogin counts a login attempt by outcome.
func (m *MetricsService) RecordLogin(success bool) {
	if m == nil {
		return
	}
	if success {
		m.loginTotal.WithLabelValues("success").Inc()
		atomic.AddUint64(&m.loginSuccessCount, 1)
		return
	}
	m.loginTotal.WithLabelValues("failure").Inc()
	atomic.AddUint64(&m.loginFailureCount, 1)
}

// RecordSubmission counts a recorded survey submission.
func (m *MetricsService) RecordSubmission() {
	if m == nil {
		return
	}
	m.submissionTotal.Inc()
	atomic.AddUint64(&m.submissionCount, 1)
}

// Snapshot returns aggregated metrics for the status endpoint.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		LoginSuccesses:           atomic.LoadUint64(&m.loginSuccessCount),
		LoginFailures:            atomic.LoadUint64(&m.loginFailureCount),
		SurveySubmissions:        atomic.LoadUint64(&m.submissionCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
