package livebar

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/redis"
)

// RedisStore is the Redis-backed live-bar store.
type RedisStore struct {
	client redis.Client
	logger logger.Interface
}

// NewRedisStore creates a live-bar store on top of the given Redis client.
func NewRedisStore(client redis.Client, logger logger.Interface) *RedisStore {
	return &RedisStore{
		client: client,
		logger: logger,
	}
}

// Append adds a bar to the symbol's intraday list, arming the TTL when the
// list is freshly created.
func (s *RedisStore) Append(ctx context.Context, symbol string, bar candle.RawBar, ttl time.Duration) error {
	payload, err := json.Marshal(bar)
	if err != nil {
		return err
	}

	length, err := s.client.RPush(ctx, ListKey(symbol), payload)
	if err != nil {
		return err
	}

	if length == 1 {
		if _, err := s.client.Expire(ctx, ListKey(symbol), ttl); err != nil {
			return err
		}
	}
	return nil
}

// ReadSession returns the decoded intraday list for the symbol, skipping
// undecodable entries.
func (s *RedisStore) ReadSession(ctx context.Context, symbol string) ([]candle.RawBar, error) {
	entries, err := s.client.LRange(ctx, ListKey(symbol), 0, -1)
	if err != nil {
		return nil, err
	}

	bars := make([]candle.RawBar, 0, len(entries))
	for _, entry := range entries {
		var bar candle.RawBar
		if err := json.Unmarshal([]byte(entry), &bar); err != nil {
			s.logger.WarnContext(ctx, "skipping undecodable intraday bar", logger.Field{
				Key:   "symbol",
				Value: symbol,
			}, logger.Field{
				Key:   "error",
				Value: err.Error(),
			})
			continue
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

// Publish sends a bar on the symbol's live channel.
func (s *RedisStore) Publish(ctx context.Context, symbol string, bar candle.RawBar) error {
	payload, err := json.Marshal(bar)
	if err != nil {
		return err
	}
	_, err = s.client.Publish(ctx, ChannelName(symbol), payload)
	return err
}
