// Package metrics provides Prometheus HTTP metrics middleware and the
// forum's domain counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	forumCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_created_total",
			Help: "Threads, comments and replies created",
		},
		[]string{"kind"},
	)

	forumDeletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_soft_deleted_total",
			Help: "Comments and replies soft deleted",
		},
		[]string{"kind"},
	)

	forumLikeTogglesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "forum_comment_like_toggles_total",
			Help: "Comment like/dislike toggles",
		},
	)
)

// Kinds used as label values of the domain counters.
const (
	KindThread  = "thread"
	KindComment = "comment"
	KindReply   = "reply"
)

func RecordCreated(kind string) {
	forumCreatedTotal.WithLabelValues(kind).Inc()
}

func RecordDeleted(kind string) {
	forumDeletedTotal.WithLabelValues(kind).Inc()
}

func RecordLikeToggle() {
	forumLikeTogglesTotal.Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// RoutePattern returns chi's matched pattern, falling back to the raw path.
func RoutePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// Middleware returns HTTP middleware that records Prometheus metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := newResponseWriter(w)
		next.ServeHTTP(wrapped, r)

		// pattern is only known after routing, use it to keep cardinality low
		path := RoutePattern(r)
		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}
