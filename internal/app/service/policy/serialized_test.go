package policy

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRetryOnce_CleanFirstRun(t *testing.T) {
	calls := 0
	err := retryOnce(func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestRetryOnce_CommitConflictRerunsExactlyOnce(t *testing.T) {
	calls := 0
	err := retryOnce(func() error {
		calls++
		if calls == 1 {
			return gorm.ErrDuplicatedKey
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestRetryOnce_SecondConflictSurfacesStoreConflict(t *testing.T) {
	calls := 0
	err := retryOnce(func() error {
		calls++
		return fmt.Errorf("insert membership: %w", gorm.ErrDuplicatedKey)
	})
	require.ErrorIs(t, err, ErrStoreConflict)
	require.Equal(t, 2, calls)
}

func TestRetryOnce_BusinessErrorNotRetried(t *testing.T) {
	calls := 0
	err := retryOnce(func() error {
		calls++
		return ErrWeeklyLimitReached
	})
	require.ErrorIs(t, err, ErrWeeklyLimitReached)
	require.Equal(t, 1, calls)
}

func TestRetryOnce_UnknownErrorOnRerunPassesThrough(t *testing.T) {
	boom := errors.New("connection reset")
	calls := 0
	err := retryOnce(func() error {
		calls++
		if calls == 1 {
			return gorm.ErrDuplicatedKey
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls)
}
