package snapshot

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/redis"
)

// RedisStore is the Redis-backed snapshot store.
type RedisStore struct {
	client redis.Client
	logger logger.Interface
}

// NewRedisStore creates a snapshot store on top of the given Redis client.
func NewRedisStore(client redis.Client, logger logger.Interface) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Get retrieves and deserializes the dataset under key. A payload that no
// longer deserializes is reported as a miss, not an error.
func (s *RedisStore) Get(ctx context.Context, key string) (candle.List, bool, error) {
	payload, err := s.client.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if payload == "" {
		return nil, false, nil
	}

	var data candle.List
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		s.logger.WarnContext(ctx, "discarding undecodable snapshot entry", logger.Field{
			Key:   "key",
			Value: key,
		}, logger.Field{
			Key:   "error",
			Value: err.Error(),
		})
		return nil, false, nil
	}

	return data, true, nil
}

// Set serializes and stores the dataset under key with the given TTL.
func (s *RedisStore) Set(ctx context.Context, key string, data candle.List, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, payload, ttl)
}
