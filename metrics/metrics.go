// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AlertsFired counts committed alerts by source (trap, pixel, simulator).
	AlertsFired = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripwire_alerts_fired_total",
		Help: "Total number of alerts committed",
	}, []string{"source"})

	// TrapIgnored counts accesses that did not fire, by reason (unknown, disabled).
	TrapIgnored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripwire_trap_ignored_total",
		Help: "Total number of trap accesses that did not produce an alert",
	}, []string{"reason"})

	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripwire_store_errors_total",
		Help: "Total number of failed store writes",
	}, []string{"op"})

	GeneratorRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripwire_generator_requests_total",
		Help: "Total number of deceptive URL generation requests",
	}, []string{"result"})

	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripwire_notifications_total",
		Help: "Total number of alert notifications sent",
	}, []string{"notifier", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tripwire_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Result labels.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)
