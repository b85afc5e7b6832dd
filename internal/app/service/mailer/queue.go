package mailer

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Queue is the abstraction over mail-dispatch backends. Delivery semantics
// are at-least-once; the consumer side owns retries.
type Queue interface {
	Publish(ctx context.Context, body []byte) error
	Consume(ctx context.Context) (<-chan []byte, error)
}

// MemoryQueue is a bounded channel-backed queue for dev and tests.
type MemoryQueue struct {
	ch chan []byte
}

func NewMemoryQueue(size int) *MemoryQueue {
	if size <= 0 {
		size = 256
	}
	return &MemoryQueue{ch: make(chan []byte, size)}
}

func (q *MemoryQueue) Publish(ctx context.Context, body []byte) error {
	select {
	case q.ch <- body:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Consume(ctx context.Context) (<-chan []byte, error) {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			select {
			case body := <-q.ch:
				select {
				case out <- body:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// RedisQueue is a Redis list-backed queue using LPUSH/BRPOP, shared with the
// external mail workers in multi-process deployments.
type RedisQueue struct {
	client *redis.Client
	key    string
}

func NewRedisQueue(client *redis.Client, key string) *RedisQueue {
	if key == "" {
		key = "gympoint:confirmation_mail"
	}
	return &RedisQueue{client: client, key: key}
}

func (q *RedisQueue) Publish(ctx context.Context, body []byte) error {
	return q.client.LPush(ctx, q.key, body).Err()
}

func (q *RedisQueue) Consume(ctx context.Context) (<-chan []byte, error) {
	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			res, err := q.client.BRPop(ctx, 5*time.Second, q.key).Result()
			if err != nil {
				if err == redis.Nil {
					continue
				}
				if ctx.Err() != nil {
					return
				}
				continue
			}
			if len(res) == 2 {
				select {
				case out <- []byte(res[1]):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
