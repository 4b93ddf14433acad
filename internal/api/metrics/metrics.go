// Package metrics defines and registers all custom Prometheus metrics for
// the tax system API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taxsystem"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful sign-ins.
// Labels:
//   - tier: the subscription tier of the account ("free", "lite", "enterprise")
//   - method: "credentials" or "demo"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by tier and method.",
	},
	[]string{"tier", "method"},
)

// EntitlementDenialsTotal counts requests rejected by tier gating.
// Labels:
//   - feature: the gated feature key (e.g. "payroll", "ai-classification")
//   - tier: the tier that was denied, as carried in the token
var EntitlementDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entitlement_denials_total",
		Help:      "Total number of requests denied for lacking a feature entitlement.",
	},
	[]string{"feature", "tier"},
)

// ── Classification metrics ────────────────────────────────────────────────────

// ClassificationJobsTotal counts classification jobs handed to the dispatcher.
// Label:
//   - trigger: "single" (one transaction) or "batch" (classify-all)
var ClassificationJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "classification_jobs_total",
		Help:      "Total number of classification jobs enqueued, by trigger.",
	},
	[]string{"trigger"},
)

// ── Billing metrics ───────────────────────────────────────────────────────────

// InvoicesCreatedTotal counts invoice creations.
// Label:
//   - outcome: "created" for a new invoice, "replayed" when the
//     Idempotency-Key matched an existing one
var InvoicesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_created_total",
		Help:      "Total number of invoice create requests, by outcome.",
	},
	[]string{"outcome"},
)

// GSTReturnsTotal counts GST return lifecycle actions.
// Label:
//   - action: "created", "submitted", or "paid"
var GSTReturnsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gst_returns_total",
		Help:      "Total number of GST return lifecycle actions.",
	},
	[]string{"action"},
)
