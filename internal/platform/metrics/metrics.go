package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the portal's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "bank_portal",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight portal requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bank_portal",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of portal requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bank_portal",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of portal requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bank_portal",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of calls made to the core banking API.",
		},
		[]string{"method", "status"},
	)

	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bank_portal",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of calls made to the core banking API.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"method"},
	)

	sessionsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bank_portal",
			Subsystem: "sessions",
			Name:      "expired_total",
			Help:      "Sessions cleared because the core banking API answered 401.",
		},
	)

	notificationPolls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bank_portal",
			Subsystem: "notifications",
			Name:      "polls_total",
			Help:      "Notification polls by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		upstreamRequests,
		upstreamDuration,
		sessionsExpired,
		notificationPolls,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a portal request in flight. The returned func records
// its outcome and must be called exactly once.
func RequestStarted(method, route string) func(status int, seconds float64) {
	httpInFlight.Inc()
	return func(status int, seconds float64) {
		httpInFlight.Dec()
		httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(seconds)
	}
}

// RecordUpstream records one call to the core banking API. Status 0 means
// the call failed before a response arrived.
func RecordUpstream(method string, status int, seconds float64) {
	label := "transport_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	upstreamRequests.WithLabelValues(method, label).Inc()
	upstreamDuration.WithLabelValues(method).Observe(seconds)
}

// RecordSessionExpired counts a session cleared after a 401.
func RecordSessionExpired() {
	sessionsExpired.Inc()
}

// RecordNotificationPoll counts a notification poll by outcome ("ok", "error", "skipped").
func RecordNotificationPoll(outcome string) {
	notificationPolls.WithLabelValues(outcome).Inc()
}
