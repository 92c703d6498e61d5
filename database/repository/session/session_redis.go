package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"letsheal/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// RedisStore keeps each session in one Redis hash so writes and clears are atomic.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	fields, err := s.client.HGetAll(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return decodeRecord(fields), nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, session models.Session) error {
	fields, err := encodeRecord(session)
	if err != nil {
		return err
	}
	key := sessionKeyPrefix + sessionID
	values := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		values = append(values, k, v)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, values...)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
