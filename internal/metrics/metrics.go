package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector exposes Prometheus metrics for the engine. A nil *Collector is
// valid and records nothing, so tests can pass nil.
type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	notifications   prometheus.Counter
	migrations      *prometheus.CounterVec
}

func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hyperapp",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency distribution for inbound HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyperapp",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of inbound HTTP requests.",
	}, []string{"method", "path", "status"})

	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyperapp",
		Subsystem: "geofence",
		Name:      "transitions_total",
		Help:      "Geofence enter/exit transitions detected.",
	}, []string{"type"})

	notifications := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "hyperapp",
		Subsystem: "geofence",
		Name:      "notifications_enqueued_total",
		Help:      "Proximity notifications handed to the notification queue.",
	})

	migrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hyperapp",
		Subsystem: "lifecycle",
		Name:      "migrations_total",
		Help:      "Reports migrated from the active set into history.",
	}, []string{"kind"})

	for _, c := range []prometheus.Collector{
		requestDuration, requestTotal, transitions, notifications, migrations,
	} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &Collector{
		registry:        registry,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		transitions:     transitions,
		notifications:   notifications,
		migrations:      migrations,
	}, nil
}

// Handler returns an HTTP handler for exposing Prometheus metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler to record HTTP metrics.
func (c *Collector) InstrumentHandler(next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.status)
		path := r.URL.Path

		c.requestTotal.WithLabelValues(r.Method, path, status).Inc()
		c.requestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
	})
}

func (c *Collector) TransitionObserved(eventType string) {
	if c == nil {
		return
	}
	c.transitions.WithLabelValues(eventType).Inc()
}

func (c *Collector) NotificationEnqueued() {
	if c == nil {
		return
	}
	c.notifications.Inc()
}

func (c *Collector) MigrationsObserved(kind string, count int) {
	if c == nil || count <= 0 {
		return
	}
	c.migrations.WithLabelValues(kind).Add(float64(count))
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
