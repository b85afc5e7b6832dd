package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryQueue_PublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewMemoryQueue(4)
	require.NoError(t, q.Publish(ctx, []byte("first")))
	require.NoError(t, q.Publish(ctx, []byte("second")))

	msgs, err := q.Consume(ctx)
	require.NoError(t, err)

	assert.Equal(t, "first", string(<-msgs))
	assert.Equal(t, "second", string(<-msgs))
}

func TestMemoryQueue_PublishBlockedByFullBuffer(t *testing.T) {
	q := NewMemoryQueue(1)
	require.NoError(t, q.Publish(context.Background(), []byte("fits")))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := q.Publish(ctx, []byte("does not"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMemoryQueue_ConsumeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := NewMemoryQueue(1)
	msgs, err := q.Consume(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-msgs:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("consumer channel not closed after cancel")
	}
}
