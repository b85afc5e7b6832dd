package policy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSentinels_AreWrapFriendly(t *testing.T) {
	err := fmt.Errorf("enroll: %w", ErrActiveMembershipExists)
	require.True(t, errors.Is(err, ErrActiveMembershipExists))
}

func TestDenialReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrStudentNotFound, "unknown_student"},
		{fmt.Errorf("wrapped: %w", ErrNotEnrolled), "not_enrolled"},
		{ErrAlreadyCheckedInToday, "already_checked_in_today"},
		{ErrWeeklyLimitReached, "weekly_limit_reached"},
		{ErrStoreConflict, "store_conflict"},
		{errors.New("boom"), "internal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DenialReason(tt.err))
	}
}

func TestIsStoreConflict(t *testing.T) {
	assert.True(t, IsStoreConflict(gorm.ErrDuplicatedKey))
	assert.True(t, IsStoreConflict(fmt.Errorf("commit: %w", ErrStoreConflict)))
	assert.False(t, IsStoreConflict(ErrNotEnrolled))
	assert.False(t, IsStoreConflict(nil))
}
