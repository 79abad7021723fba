package common

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics collects request counts and latencies on its own registry.
type HTTPMetrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewHTTPMetrics() *HTTPMetrics {
	reg := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	reg.MustRegister(requests, latency)

	return &HTTPMetrics{
		registry: reg,
		requests: requests,
		latency:  latency,
	}
}

// Middleware records every request under the label pathLabel returns. The
// label set must stay bounded whatever paths clients send.
func (m *HTTPMetrics) Middleware(pathLabel func(r *http.Request) string, next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		status := strconv.Itoa(sw.status)
		path := pathLabel(r)
		m.requests.WithLabelValues(r.Method, path, status).Inc()
		m.latency.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
	})
}

func (m *HTTPMetrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
