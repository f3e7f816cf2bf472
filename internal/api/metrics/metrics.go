// Package metrics defines the api layer's Prometheus metrics for the Orbit
// admin console; promauto registers everything with the default registry at
// package init. The backend client registers its own outgoing-call metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// LoginsTotal counts login attempts made through the login screen.
// Label:
//   - result: "success", "rejected" (bad credentials), or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts sign-up attempts that reached the backend.
// Label:
//   - result: "success" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of sign-up attempts forwarded to the backend, by result.",
	},
	[]string{"result"},
)
