package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMembership_EffectivelyActive(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, 1, 10, 15, 30, 0, 0, loc)
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}

	tests := []struct {
		name       string
		membership *Membership
		want       bool
	}{
		{name: "nil", membership: nil, want: false},
		{name: "active flag set", membership: &Membership{Active: true, StartDate: day(2023, 1, 1)}, want: true},
		{name: "inactive and started in the past", membership: &Membership{StartDate: day(2023, 12, 1)}, want: false},
		{name: "inactive starting today", membership: &Membership{StartDate: day(2024, 1, 10)}, want: true},
		{name: "inactive future-dated", membership: &Membership{StartDate: day(2024, 2, 1)}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.membership.EffectivelyActive(now, loc))
		})
	}
}

func TestMembership_EffectivelyActive_TimezoneBoundary(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	// 02:00 UTC on Jan 12 is still Jan 11 in Sao Paulo (UTC-3), so a
	// membership starting Jan 11 local still blocks enrollment; one local
	// midnight later it no longer does.
	m := &Membership{StartDate: time.Date(2024, 1, 11, 0, 0, 0, 0, sp)}

	assert.True(t, m.EffectivelyActive(time.Date(2024, 1, 12, 2, 0, 0, 0, time.UTC), sp))
	assert.False(t, m.EffectivelyActive(time.Date(2024, 1, 12, 3, 1, 0, 0, time.UTC), sp))
}
