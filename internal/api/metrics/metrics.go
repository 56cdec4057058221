// Package metrics defines the custom Prometheus metrics for the CRMPro API.
// It is the single source of truth for metric names, labels, and help
// strings; all series are registered with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crmpro"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "missing_fields", or "email_taken"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "user_not_found", or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// VerificationsTotal counts email verification attempts.
// Label:
//   - result: "verified", "already_verified", or "invalid_token"
var VerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_total",
		Help:      "Total number of email verification attempts, labelled by result.",
	},
	[]string{"result"},
)

// ContactRequestsTotal counts accepted enterprise contact requests.
var ContactRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_requests_total",
		Help:      "Total number of accepted enterprise contact requests.",
	},
)
