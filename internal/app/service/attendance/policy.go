package attendance

import (
	"time"

	"github.com/gympoint/backoffice/internal/app/service/policy"
	models "github.com/gympoint/backoffice/internal/models"
)

// Pure decision logic for check-ins. The service layer loads membership and
// history under the student lock and feeds them in here; ordering is
// cheapest-rejection-first so the common failures never reach the history
// scan.

// CheckMembership gates on enrollment state before any history is read.
func CheckMembership(m *models.Membership) error {
	if m == nil {
		return policy.ErrNotEnrolled
	}
	if !m.Active {
		return policy.ErrMembershipInactive
	}
	return nil
}

// CheckHistory applies the daily and weekly caps. history holds the
// timestamps of the student's check-ins inside the trailing window ending at
// now; a same-calendar-day entry (in loc) rejects before the count does.
func CheckHistory(history []time.Time, now time.Time, loc *time.Location, weeklyLimit int) error {
	today := models.DayKey(now, loc)
	for _, h := range history {
		if models.DayKey(h, loc) == today {
			return policy.ErrAlreadyCheckedInToday
		}
	}
	if len(history) >= weeklyLimit {
		return policy.ErrWeeklyLimitReached
	}
	return nil
}
