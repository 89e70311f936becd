// Package metrics defines and registers all custom Prometheus metrics for the
// account registry. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "account_registry"

// AccountsCreatedTotal counts successfully created accounts.
var AccountsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created.",
	},
)

// AccountUpdatesTotal counts update requests that passed validation.
// Label:
//   - result: "updated" (candidate persisted) or "no_change" (no-op detected,
//     nothing written)
var AccountUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "account_updates_total",
		Help:      "Total number of accepted account updates, by result.",
	},
	[]string{"result"},
)

// AuthenticationsTotal counts authentication attempts by terminal outcome.
// Label:
//   - outcome: "success", "not_found", "invalid_password", or "locked"
var AuthenticationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authentications_total",
		Help:      "Total number of authentication attempts, by outcome.",
	},
	[]string{"outcome"},
)
