package bootstrap

import (
	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/stream"
	"github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/rediscache/livebar"
	"github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/rediscache/snapshot"
)

// Store is the Redis-backed cache layer: historical snapshots and the
// intraday live-bar session state.
type Store struct {
	SnapshotStore snapshot.Store
	LiveBarStore  livebar.Store
	LiveBarSource stream.SourceFactory
}

// registerStore registers the store.
func (b *Bootstrap) registerStore() {
	b.Store.SnapshotStore = snapshot.NewRedisStore(b.Redis, b.Logger)
	b.Store.LiveBarStore = livebar.NewRedisStore(b.Redis, b.Logger)
	b.Store.LiveBarSource = livebar.NewSourceFactory(b.Redis, b.Logger)
}
