package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
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
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	visitorsRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visitors_registered_total",
			Help: "Total number of visitors registered",
		},
	)

	visitorConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "visitor_conflicts_total",
			Help: "Total number of registrations rejected as duplicates",
		},
	)

	leadsAttached = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_attached_total",
			Help: "Total number of lead attachment attempts",
		},
		[]string{"outcome"}, // ok | warning
	)

	suggestionQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "phone_suggestion_queries_total",
			Help: "Total number of phone suggestion queries",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordVisitorRegistered() {
	visitorsRegistered.Inc()
}

func RecordVisitorConflict() {
	visitorConflicts.Inc()
}

func RecordLeadAttached(outcome string) {
	leadsAttached.WithLabelValues(outcome).Inc()
}

func RecordSuggestionQuery() {
	suggestionQueries.Inc()
}
