// Package metrics defines and registers all custom Prometheus metrics for
// the storefront data store. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register on the default Prometheus registry at package init; the
// embedding program decides whether to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Identity metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok" or "duplicate_email"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts credential checks.
// Label:
//   - result: "ok", "privileged", or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of authentication attempts, by result.",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// CatalogMutationsTotal counts successful catalog writes.
// Label:
//   - op: "create", "update", or "delete"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of catalog mutations, by operation.",
	},
	[]string{"op"},
)

// ── Cart metrics ──────────────────────────────────────────────────────────────

// CartOpsTotal counts successful cart mutations.
// Label:
//   - op: "add", "set_quantity", or "remove"
var CartOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_ops_total",
		Help:      "Total number of cart mutations, by operation.",
	},
	[]string{"op"},
)

// DanglingLinesSkipped counts cart lines filtered at read time because their
// catalog item no longer exists.
var DanglingLinesSkipped = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_dangling_lines_skipped_total",
		Help:      "Total number of cart lines skipped due to a deleted catalog item.",
	},
)
