package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gympoint/backoffice/internal/app/service/policy"
	models "github.com/gympoint/backoffice/internal/models"
)

var loc = time.UTC

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func TestComputeTerms(t *testing.T) {
	plan := &models.Plan{ID: "p1", Title: "Gold", DurationMonths: 3, PriceCents: 10000}

	terms := ComputeTerms(plan, day(2024, 1, 31), loc)

	assert.Equal(t, day(2024, 1, 31), terms.StartDate)
	assert.Equal(t, day(2024, 4, 30), terms.EndDate)
	assert.Equal(t, int64(30000), terms.PriceCents)
	require.NotNil(t, terms.Snapshot)
	assert.Equal(t, "Gold", terms.Snapshot.Title)
	assert.Equal(t, int64(30000), terms.Snapshot.TotalPriceCents())
}

func TestComputeTerms_TruncatesToMidnight(t *testing.T) {
	plan := &models.Plan{DurationMonths: 1, PriceCents: 5000}
	start := time.Date(2024, 3, 15, 17, 45, 12, 0, loc)

	terms := ComputeTerms(plan, start, loc)

	assert.Equal(t, day(2024, 3, 15), terms.StartDate)
	assert.Equal(t, day(2024, 4, 15), terms.EndDate)
}

func TestCheckEnroll(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, loc)

	tests := []struct {
		name      string
		current   *models.Membership
		startDate time.Time
		wantErr   error
	}{
		{name: "no membership, today", current: nil, startDate: day(2024, 1, 10)},
		{name: "no membership, future", current: nil, startDate: day(2024, 2, 1)},
		{name: "no membership, past date", current: nil, startDate: day(2024, 1, 9), wantErr: policy.ErrPastStartDate},
		{name: "lapsed inactive membership", current: &models.Membership{StartDate: day(2023, 6, 1)}, startDate: day(2024, 1, 10)},
		{name: "active membership blocks", current: &models.Membership{Active: true, StartDate: day(2023, 6, 1)}, startDate: day(2024, 1, 10), wantErr: policy.ErrActiveMembershipExists},
		{name: "future-dated unconfirmed blocks", current: &models.Membership{StartDate: day(2024, 3, 1)}, startDate: day(2024, 1, 10), wantErr: policy.ErrActiveMembershipExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckEnroll(tt.current, tt.startDate, now, loc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckRenew(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, loc)

	tests := []struct {
		name      string
		current   *models.Membership
		startDate time.Time
		wantErr   error
	}{
		{name: "no membership", current: nil, startDate: day(2024, 1, 10), wantErr: policy.ErrNotEnrolled},
		{name: "active is immutable", current: &models.Membership{Active: true}, startDate: day(2024, 1, 10), wantErr: policy.ErrMembershipActiveImmutable},
		{name: "inactive, past date", current: &models.Membership{}, startDate: day(2024, 1, 1), wantErr: policy.ErrPastStartDate},
		{name: "inactive, ok", current: &models.Membership{}, startDate: day(2024, 1, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRenew(tt.current, tt.startDate, now, loc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
