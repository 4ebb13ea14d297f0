package storage

import (
	"context"
	"fmt"
	"time"
)

// CheckRateLimit counts submissions per client key in a fixed Redis
// window. Returns true when the caller is over the limit.
func (s *PostgresStorage) CheckRateLimit(ctx context.Context, clientKey, action string, limit int64, window time.Duration) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", clientKey, action)

	count, err := s.redis.Incr(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// Set expiry if this is the first increment
	if count == 1 {
		if _, err := s.redis.Expire(ctx, key, window); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count > limit, nil
}
