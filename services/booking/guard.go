package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// releaseScript deletes the lock only if the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard is a Guard shared by every gateway instance. The TTL bounds how long a
// crashed instance can hold a key.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl, prefix: "booking:inflight:"}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	owner := uuid.NewString()
	ok, err := g.client.SetNX(ctx, g.prefix+key, owner, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire booking guard: %w", err)
	}
	if !ok {
		return nil, ErrDuplicateSubmission
	}
	return func() {
		// The request context may already be gone; release on a fresh one.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, g.client, []string{g.prefix + key}, owner).Err(); err != nil {
			zap.L().Warn("Failed to release booking guard, it will expire on its own",
				zap.String("key", g.prefix+key), zap.Error(err))
		}
	}, nil
}

// LocalGuard is an in-process Guard for single-instance deployments and tests.
type LocalGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalGuard() *LocalGuard {
	return &LocalGuard{held: make(map[string]struct{})}
}

func (g *LocalGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.held[key]; busy {
		return nil, ErrDuplicateSubmission
	}
	g.held[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}

// GuardKey scopes a submission lock to one session and therapist.
func GuardKey(sessionID string, therapistID string) string {
	return sessionID + ":" + therapistID
}
