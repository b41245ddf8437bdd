// Package metrics defines and registers all custom Prometheus metrics for the
// waste platform API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chemba"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the auth rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the auth rate limiter.",
	},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportsCreatedTotal counts newly filed waste reports.
// Label:
//   - waste_type: "plastic", "metal", "organic", "glass", "electronic", "other"
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of waste reports filed, by waste type.",
	},
	[]string{"waste_type"},
)

// AuditEventsTotal counts report status-change audit events by outcome.
// Label:
//   - result: "stored" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of report audit events processed, by result.",
	},
	[]string{"result"},
)

// ── Points metrics ────────────────────────────────────────────────────────────

// PickupsScheduledTotal counts successfully booked pickups.
var PickupsScheduledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pickups_scheduled_total",
		Help:      "Total number of pickups scheduled.",
	},
)

// PointsEarnedTotal accumulates reward points credited for reports.
var PointsEarnedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "points_earned_total",
		Help:      "Total reward points credited to reporters.",
	},
)

// PointsSpentTotal accumulates reward points spent on pickups.
var PointsSpentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "points_spent_total",
		Help:      "Total reward points spent on pickup scheduling.",
	},
)
