package store

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "session:revoked:"

// RedisSessionRevoker remembers logged-out session ids until they would have expired anyway.
type RedisSessionRevoker struct {
	client *redis.Client
}

func NewRedisSessionRevoker(client *redis.Client) *RedisSessionRevoker {
	return &RedisSessionRevoker{client: client}
}

func (r *RedisSessionRevoker) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedPrefix+sessionID, "1", ttl).Err()
}

func (r *RedisSessionRevoker) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	err := r.client.Get(ctx, revokedPrefix+sessionID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// NoopSessionRevoker is used when Redis is not configured: sessions live until expiry.
type NoopSessionRevoker struct{}

func (NoopSessionRevoker) Revoke(context.Context, string, time.Duration) error { return nil }

func (NoopSessionRevoker) IsRevoked(context.Context, string) (bool, error) { return false, nil }
