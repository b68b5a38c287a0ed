// Package metrics defines and registers the custom Prometheus metrics for
// the hotel booking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register themselves with the default Prometheus registry via
// promauto at package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - role: the role assigned to the new account (e.g. "ADMIN", "USER")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_registrations_total",
		Help:      "Total number of user accounts registered, by assigned role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure" (bad credentials or unknown email), or
//     "error" (unexpected failure while issuing the token)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// UsersDeletedTotal counts removed accounts.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of user accounts deleted.",
	},
)
