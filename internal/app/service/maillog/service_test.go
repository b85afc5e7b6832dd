package maillog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDrain_WaitsForPendingSaves(t *testing.T) {
	s := New(nil, zap.NewNop().Sugar())
	for i := 0; i < 8; i++ {
		s.Save(context.Background(), nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Drain(ctx))
}

func TestDrain_GivesUpWhenContextExpires(t *testing.T) {
	s := New(nil, zap.NewNop().Sugar())
	// Simulate a write that outlives the shutdown window.
	s.wg.Add(1)
	defer s.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, s.Drain(ctx), context.DeadlineExceeded)
}
