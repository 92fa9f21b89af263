package snapshot

import (
	"context"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
)

//go:generate mockgen -source=interface.go -destination=mock/store_mock.go -package=mock

// Store holds fully materialized, ordered candle datasets keyed by query
// fingerprint. Datasets are immutable after build and expire on their TTL.
type Store interface {
	// Get returns the dataset under key. found is false on a miss, an expired
	// key, or an entry that no longer deserializes (the cache self-heals by
	// rebuilding).
	Get(ctx context.Context, key string) (data candle.List, found bool, err error)

	// Set stores the dataset under key with the given TTL.
	Set(ctx context.Context, key string, data candle.List, ttl time.Duration) error
}
