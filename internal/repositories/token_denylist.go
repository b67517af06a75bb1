package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist records revoked token IDs (jti claims) in redis. Entries
// carry a TTL equal to the token's remaining lifetime, so the set never
// outgrows the number of live tokens. Logout-before-expiry works through
// this; without redis configured, tokens stay valid until natural expiry.
type TokenDenylist struct {
	Client *redis.Client
}

const denylistPrefix = "denylist:"

func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return d.Client.Set(ctx, denylistPrefix+tokenID, 1, ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}
	n, err := d.Client.Exists(ctx, denylistPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
