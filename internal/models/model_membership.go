package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/gympoint/backoffice/pkg/types"
)

// Membership is a time-bounded enrollment of one student in one plan. A
// student has at most one row (renewal updates in place, cancellation
// deletes); the unique index on student_id is the commit-time backstop for
// the one-active-membership invariant.
type Membership struct {
	ID        string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	StudentID string `gorm:"column:student_id;type:uuid;not null;uniqueIndex" json:"student_id"`
	PlanID    string `gorm:"column:plan_id;type:uuid;not null" json:"plan_id"`
	// StartDate is the first day of the term, at midnight in the configured
	// timezone.
	StartDate time.Time `gorm:"column:start_date;not null" json:"start_date"`
	// EndDate is StartDate advanced by the plan duration in calendar months,
	// clamped at month end. Never set independently.
	EndDate time.Time `gorm:"column:end_date;not null" json:"end_date"`
	// PriceCents is plan monthly price x duration, frozen at enrollment or
	// renewal time. Later plan edits never change it.
	PriceCents int64 `gorm:"column:price_cents;type:bigint;not null" json:"price_cents"`
	// Active is flipped by the external confirmation actor, never by enroll.
	Active bool `gorm:"column:active;not null;default:false" json:"active"`
	// PlanSnapshot records what was bought (title, duration, monthly price).
	PlanSnapshot datatypes.JSONType[*types.PlanSnapshot] `gorm:"column:plan_snapshot;type:jsonb;default:'{}'" json:"plan_snapshot"`
	CreatedAt    time.Time                               `json:"created_at"`
	UpdatedAt    time.Time                               `json:"updated_at"`
}

func (Membership) TableName() string {
	return "membership"
}

// EffectivelyActive reports whether this membership blocks a new enrollment:
// either it is confirmed active, or it is future-dated (a not-yet-started
// term still reserves the student's slot). Evaluated fresh on every read,
// never cached.
func (m *Membership) EffectivelyActive(now time.Time, loc *time.Location) bool {
	if m == nil {
		return false
	}
	if m.Active {
		return true
	}
	return !m.StartDate.Before(StartOfDay(now, loc))
}

// GetPlanSnapshot returns the frozen plan data, nil when absent.
func (m *Membership) GetPlanSnapshot() *types.PlanSnapshot {
	if m == nil {
		return nil
	}
	return m.PlanSnapshot.Data()
}
