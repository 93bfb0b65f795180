package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Optional Redis client for revoked admin access tokens. Logout revokes the
// presented access token for the rest of its lifetime; without Redis the
// token simply runs out its (short) TTL.
var revokedClient *redis.Client

const revokedKeyPrefix = "revoked:access:"

// SetBlacklistClient configures the Redis client used for token revocation.
// Safe to call with nil to disable revocation checks.
func SetBlacklistClient(c *redis.Client) {
	revokedClient = c
}

// BlacklistAccessToken marks the token revoked until ttl passes. A no-op
// returning nil when no Redis client is configured.
func BlacklistAccessToken(ctx context.Context, token string, ttl time.Duration) error {
	if revokedClient == nil {
		return nil
	}
	return revokedClient.Set(ctx, revokedKeyPrefix+token, "1", ttl).Err()
}

// IsAccessTokenBlacklisted reports whether the token has been revoked.
// Returns (false, nil) when no Redis client is configured.
func IsAccessTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if revokedClient == nil {
		return false, nil
	}
	n, err := revokedClient.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
