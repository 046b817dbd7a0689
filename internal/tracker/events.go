package tracker

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// EventCardMoved is published on every successful board move so other
// processes (or a future SSE gateway) can react.
const EventCardMoved = "EVENT_CARD_MOVED"

// Publisher emits board events. Failures are non-fatal to the operation that
// triggered them.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NoopPublisher is used when no Redis is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	return nil
}

// RedisPublisher publishes events over Redis pub/sub.
type RedisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher wraps an already-connected client.
func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) Publish(ctx context.Context, channel string, payload []byte) error {
	return p.rdb.Publish(ctx, channel, payload).Err()
}
