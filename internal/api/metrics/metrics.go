// Package metrics defines all custom Prometheus metrics for the HeroBox API.
// It is the single source of truth for metric names, labels, and help strings.
//
// Metrics register themselves with the default registry at package init via
// promauto; expose them by mounting promhttp.Handler on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "herobox"

// SignupsTotal counts account registrations.
// Label:
//   - result: "success" or "failure"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of sign-up attempts, by result.",
	},
	[]string{"result"},
)

// SigninsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signins_total",
		Help:      "Total number of sign-in attempts, by result.",
	},
	[]string{"result"},
)

// ClanOperationsTotal counts completed clan lifecycle operations.
// Label:
//   - op: "create", "update" or "delete"
var ClanOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clan_operations_total",
		Help:      "Total number of successful clan lifecycle operations, by operation.",
	},
	[]string{"op"},
)

// RequestDuration measures HTTP request latency per route.
// Labels:
//   - method: HTTP method
//   - path: the registered route pattern (e.g. "/api/clans/:id")
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)
