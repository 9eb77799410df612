// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vefa"

var (
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Toggle and delete requests applied to session workspaces.",
		},
		[]string{"domain", "action", "changed"},
	)

	PendingFeatureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pending_feature_requests_total",
			Help:      "Requests for workflows that are not implemented yet.",
		},
		[]string{"feature"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Session workspaces currently held in memory.",
		},
	)

	ActivityEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activity_events_total",
			Help:      "Activity events by outcome (published, publish_failed, consumed, duplicate, rejected).",
		},
		[]string{"outcome"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordMutation counts one workspace mutation.
func RecordMutation(domain, action string, changed bool) {
	MutationsTotal.WithLabelValues(domain, action, strconv.FormatBool(changed)).Inc()
}

// RecordHTTP counts one served request.
func RecordHTTP(method, route string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
