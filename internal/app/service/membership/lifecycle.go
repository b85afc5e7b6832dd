package membership

import (
	"time"

	"github.com/gympoint/backoffice/internal/app/service/policy"
	models "github.com/gympoint/backoffice/internal/models"
	"github.com/gympoint/backoffice/pkg/types"
)

// Pure decision logic for the membership lifecycle. These functions operate
// on data already loaded (and locked) by the service layer, so they are
// unit-testable without a store.

// Terms is everything derived from plan and start date at write time.
type Terms struct {
	StartDate  time.Time
	EndDate    time.Time
	PriceCents int64
	Snapshot   *types.PlanSnapshot
}

// ComputeTerms freezes end date and price from the plan as it is right now.
func ComputeTerms(plan *models.Plan, startDate time.Time, loc *time.Location) Terms {
	start := models.StartOfDay(startDate, loc)
	return Terms{
		StartDate:  start,
		EndDate:    AddMonths(start, plan.DurationMonths, loc),
		PriceCents: plan.PriceCents * int64(plan.DurationMonths),
		Snapshot:   plan.Snapshot(),
	}
}

// CheckStartDate rejects back-dated enrollments. A start date on the current
// calendar day is allowed.
func CheckStartDate(startDate, now time.Time, loc *time.Location) error {
	if models.StartOfDay(startDate, loc).Before(models.StartOfDay(now, loc)) {
		return policy.ErrPastStartDate
	}
	return nil
}

// CheckEnroll decides whether a new membership may be created given the
// student's current one (nil when none). A membership that is confirmed
// active, or future-dated and merely unconfirmed, still blocks enrollment.
func CheckEnroll(current *models.Membership, startDate, now time.Time, loc *time.Location) error {
	if current != nil && current.EffectivelyActive(now, loc) {
		return policy.ErrActiveMembershipExists
	}
	return CheckStartDate(startDate, now, loc)
}

// CheckRenew decides whether the existing membership may be rewritten in
// place. An active membership is immutable; it must lapse or be cancelled
// first.
func CheckRenew(current *models.Membership, startDate, now time.Time, loc *time.Location) error {
	if current == nil {
		return policy.ErrNotEnrolled
	}
	if current.Active {
		return policy.ErrMembershipActiveImmutable
	}
	return CheckStartDate(startDate, now, loc)
}
