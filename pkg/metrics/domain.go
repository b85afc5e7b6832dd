package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Policy-engine counters. Denial reasons use the stable error kind names so
// dashboards survive message wording changes.
var (
	EnrollmentsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Subsystem: "policy",
		Name:      "enrollments_total",
		Help:      "Memberships created.",
	})
	RenewalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Subsystem: "policy",
		Name:      "renewals_total",
		Help:      "Memberships renewed in place.",
	})
	CancellationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Subsystem: "policy",
		Name:      "cancellations_total",
		Help:      "Memberships cancelled and removed.",
	})
	CheckinsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Subsystem: "policy",
		Name:      "checkins_recorded_total",
		Help:      "Check-ins accepted and persisted.",
	})
	CheckinsDeniedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Subsystem: "policy",
		Name:      "checkins_denied_total",
		Help:      "Check-ins rejected, partitioned by denial reason.",
	}, []string{"reason"})
	StoreConflictRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Subsystem: "policy",
		Name:      "store_conflict_retries_total",
		Help:      "Policy operations re-run after a commit-time conflict.",
	})
)
