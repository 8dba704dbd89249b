// Package metrics defines and registers all custom Prometheus metrics for
// the catalog API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; expose them by mounting the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Label:
//   - mode: "token" (JSON API) or "session" (rendered pages)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by authentication mode.",
	},
	[]string{"mode"},
)

// MembersRegisteredTotal counts newly registered members.
var MembersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_registered_total",
		Help:      "Total number of members registered.",
	},
)

// ── Review metrics ────────────────────────────────────────────────────────────

// ReviewsSubmittedTotal counts reviews accepted into a perfume's embedded list.
// Label:
//   - rating: the integer rating as a string ("1".."5")
var ReviewsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_submitted_total",
		Help:      "Total number of reviews successfully submitted, by rating.",
	},
	[]string{"rating"},
)

// ReviewsRejectedTotal counts rejected review submissions.
// Label:
//   - reason: "duplicate", "invalid", or "not_found"
var ReviewsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_rejected_total",
		Help:      "Total number of review submissions rejected, by reason.",
	},
	[]string{"reason"},
)
