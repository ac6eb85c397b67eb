package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/buildservice/build-service/internal/core/domain"
)

const (
	defaultMaxFailures = 5
	defaultLockout     = 15 * time.Minute
)

// LoginLimiter counts failed logins per email in a fixed window.
// Key format: login_fail:<lowercased email>
type LoginLimiter struct {
	client      redis.Cmdable
	maxFailures int64
	window      time.Duration
}

// NewLoginLimiter creates a LoginLimiter. Non-positive arguments fall back to
// 5 failures per 15 minutes.
func NewLoginLimiter(client redis.Cmdable, maxFailures int, window time.Duration) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultLockout
	}
	return &LoginLimiter{client: client, maxFailures: int64(maxFailures), window: window}
}

// Allow returns domain.ErrTooManyAttempts once the failure budget of the
// current window is spent.
func (l *LoginLimiter) Allow(ctx context.Context, email string) error {
	count, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("login limiter get: %w", err)
	}
	if count >= l.maxFailures {
		return domain.ErrTooManyAttempts
	}
	return nil
}

// RecordFailure counts one failed attempt. The window starts with the first
// failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return "login_fail:" + strings.ToLower(strings.TrimSpace(email))
}
