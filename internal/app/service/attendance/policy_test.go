package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympoint/backoffice/internal/app/service/policy"
	models "github.com/gympoint/backoffice/internal/models"
)

func TestCheckMembership(t *testing.T) {
	require.ErrorIs(t, CheckMembership(nil), policy.ErrNotEnrolled)
	require.ErrorIs(t, CheckMembership(&models.Membership{Active: false}), policy.ErrMembershipInactive)
	assert.NoError(t, CheckMembership(&models.Membership{Active: true}))
}

func TestCheckHistory(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, loc)
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	tests := []struct {
		name    string
		history []time.Time
		wantErr error
	}{
		{name: "no history"},
		{name: "four in window", history: []time.Time{daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4)}},
		{name: "same day rejects", history: []time.Time{now.Add(-2 * time.Hour)}, wantErr: policy.ErrAlreadyCheckedInToday},
		{
			name:    "five in window rejects",
			history: []time.Time{daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4), daysAgo(5)},
			wantErr: policy.ErrWeeklyLimitReached,
		},
		{
			name:    "daily beats weekly when both apply",
			history: []time.Time{now.Add(-time.Hour), daysAgo(1), daysAgo(2), daysAgo(3), daysAgo(4)},
			wantErr: policy.ErrAlreadyCheckedInToday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckHistory(tt.history, now, loc, 5)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckHistory_WeeklyWindowBoundaryInclusive(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, loc)
	// The oldest entry sits exactly seven days back. The window is closed on
	// both ends, so it still counts toward the cap.
	history := []time.Time{
		now.Add(-7 * 24 * time.Hour),
		now.AddDate(0, 0, -4),
		now.AddDate(0, 0, -3),
		now.AddDate(0, 0, -2),
		now.AddDate(0, 0, -1),
	}

	require.ErrorIs(t, CheckHistory(history, now, loc, 5), policy.ErrWeeklyLimitReached)
	assert.NoError(t, CheckHistory(history[1:], now, loc, 5))
}

func TestCheckHistory_CalendarDayNotSlidingDay(t *testing.T) {
	loc := time.UTC
	// 00:30 today; a check-in 23:50 yesterday is only 40 minutes old but
	// belongs to the previous calendar day, so it does not trip the daily cap.
	now := time.Date(2024, 1, 10, 0, 30, 0, 0, loc)
	yesterdayLate := time.Date(2024, 1, 9, 23, 50, 0, 0, loc)

	assert.NoError(t, CheckHistory([]time.Time{yesterdayLate}, now, loc, 5))
}
