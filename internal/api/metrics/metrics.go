// Package metrics defines the custom Prometheus metrics for the caseflow
// API. It is the single source of truth for metric names, labels, and
// help strings; collectors register themselves with the default registry
// at init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "caseflow"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SignupsTotal counts successfully created accounts.
// Label:
//   - role: the role assigned at signup ("Admin", "Lawyer", "Clerk")
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// CaseMutationsTotal counts successful case writes.
// Label:
//   - operation: "create", "update", or "delete"
var CaseMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "case_mutations_total",
		Help:      "Total number of successful case mutations, by operation.",
	},
	[]string{"operation"},
)

// CacheLookupsTotal counts case list cache lookups.
// Label:
//   - result: "hit" or "miss"
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "case_cache_lookups_total",
		Help:      "Total number of case list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
