package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked bearer tokens until their natural expiry.
// Keys hold a SHA-256 of the token so raw credentials never land in Redis.
// Key format: revoked:<hex-digest>
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marks the token as revoked for ttlSeconds. The TTL should be the
// token's remaining lifetime; the entry is useless after that anyway.
func (d *TokenDenylist) Revoke(ctx context.Context, token string, ttlSeconds int64) error {
	if ttlSeconds <= 0 {
		return nil
	}
	err := d.client.Set(ctx, d.key(token), "1", time.Duration(ttlSeconds)*time.Second).Err()
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist lookup: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
