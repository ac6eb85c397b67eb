package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildservice/build-service/internal/core/domain"
)

func newTestLimiter(t *testing.T, max int, window time.Duration) (*LoginLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoginLimiter(client, max, window), mr
}

func TestLoginLimiter_LocksAfterMaxFailures(t *testing.T) {
	ctx := context.Background()
	l, _ := newTestLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Allow(ctx, "ann@site.io"))
		require.NoError(t, l.RecordFailure(ctx, "ann@site.io"))
	}

	assert.ErrorIs(t, l.Allow(ctx, "ann@site.io"), domain.ErrTooManyAttempts)
	assert.ErrorIs(t, l.Allow(ctx, "ANN@site.io"), domain.ErrTooManyAttempts, "emails are matched case-insensitively")
	assert.NoError(t, l.Allow(ctx, "bob@site.io"))
}

func TestLoginLimiter_WindowExpires(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLimiter(t, 1, time.Minute)

	require.NoError(t, l.RecordFailure(ctx, "ann@site.io"))
	require.ErrorIs(t, l.Allow(ctx, "ann@site.io"), domain.ErrTooManyAttempts)
	assert.Equal(t, time.Minute, mr.TTL("login_fail:ann@site.io"))

	mr.FastForward(time.Minute + time.Second)
	assert.NoError(t, l.Allow(ctx, "ann@site.io"))
}

func TestLoginLimiter_WindowStartsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLimiter(t, 5, time.Minute)

	require.NoError(t, l.RecordFailure(ctx, "ann@site.io"))
	mr.FastForward(30 * time.Second)
	require.NoError(t, l.RecordFailure(ctx, "ann@site.io"))

	assert.Equal(t, 30*time.Second, mr.TTL("login_fail:ann@site.io"))
}

func TestLoginLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLimiter(t, 1, time.Minute)

	require.NoError(t, l.RecordFailure(ctx, "ann@site.io"))
	require.NoError(t, l.Reset(ctx, "ann@site.io"))

	assert.False(t, mr.Exists("login_fail:ann@site.io"))
	assert.NoError(t, l.Allow(ctx, "ann@site.io"))
}

func TestLoginLimiter_Defaults(t *testing.T) {
	l := NewLoginLimiter(nil, 0, 0)

	assert.Equal(t, int64(defaultMaxFailures), l.maxFailures)
	assert.Equal(t, defaultLockout, l.window)
}

func TestLoginLimiter_Unavailable(t *testing.T) {
	ctx := context.Background()
	l, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	err := l.Allow(ctx, "ann@site.io")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTooManyAttempts)
}
