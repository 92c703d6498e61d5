package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLocalGuard(t *testing.T) {
	g := NewLocalGuard()
	ctx := context.Background()

	release, err := g.Acquire(ctx, "s1:12")
	require.NoError(t, err)

	_, err = g.Acquire(ctx, "s1:12")
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	other, err := g.Acquire(ctx, "s1:13")
	require.NoError(t, err)
	other()

	release()
	release()
	again, err := g.Acquire(ctx, "s1:12")
	require.NoError(t, err)
	again()
}

func TestRedisGuard(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	g := NewRedisGuard(client, 30*time.Second)
	ctx := context.Background()

	release, err := g.Acquire(ctx, GuardKey("sess", "12"))
	require.NoError(t, err)
	assert.True(t, mr.Exists("booking:inflight:sess:12"))
	assert.Equal(t, 30*time.Second, mr.TTL("booking:inflight:sess:12"))

	_, err = g.Acquire(ctx, GuardKey("sess", "12"))
	assert.ErrorIs(t, err, ErrDuplicateSubmission)

	release()
	assert.False(t, mr.Exists("booking:inflight:sess:12"))
}

func TestRedisGuardReleaseKeepsForeignLock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	g := NewRedisGuard(client, time.Second)
	ctx := context.Background()

	release, err := g.Acquire(ctx, "k")
	require.NoError(t, err)

	// The lock expired and another instance took it over.
	mr.FastForward(2 * time.Second)
	_, err = g.Acquire(ctx, "k")
	require.NoError(t, err)

	release()
	assert.True(t, mr.Exists("booking:inflight:k"))
}

func TestRedisGuardReleaseFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	t.Cleanup(zap.ReplaceGlobals(zap.New(core)))

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	g := NewRedisGuard(client, time.Minute)

	release, err := g.Acquire(context.Background(), "k")
	require.NoError(t, err)

	mr.Close()
	release()

	entries := logs.FilterMessage("Failed to release booking guard, it will expire on its own").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "booking:inflight:k", entries[0].ContextMap()["key"])
}
