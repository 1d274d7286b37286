package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevocations is a Redis-backed deny list of access token ids. A nil
// *TokenRevocations treats every token as live.
type TokenRevocations struct {
	Client *redis.Client
	Prefix string
}

func NewTokenRevocations(client *redis.Client) *TokenRevocations {
	if client == nil {
		return nil
	}
	return &TokenRevocations{Client: client, Prefix: "revoked:"}
}

func (t *TokenRevocations) key(jti string) string {
	return t.Prefix + jti
}

// Revoke marks jti as revoked for ttl, the remaining lifetime of the token.
func (t *TokenRevocations) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if t == nil || jti == "" || ttl <= 0 {
		return nil
	}
	if err := t.Client.Set(ctx, t.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revocations.Revoke: %w", err)
	}
	return nil
}

func (t *TokenRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if t == nil || jti == "" {
		return false, nil
	}
	n, err := t.Client.Exists(ctx, t.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocations.IsRevoked: %w", err)
	}
	return n > 0, nil
}
