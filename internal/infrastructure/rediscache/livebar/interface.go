package livebar

import (
	"context"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
)

//go:generate mockgen -source=interface.go -destination=mock/store_mock.go -package=mock

// Store gives access to the per-symbol raw 1-second bar plumbing on the
// broker: the live pub/sub channel and the append-only intraday list used to
// reconstruct "today so far" without touching the long-term store.
type Store interface {
	// Append adds a bar to the symbol's intraday list. The list expires after
	// ttl (one trading day); readers never mutate it.
	Append(ctx context.Context, symbol string, bar candle.RawBar, ttl time.Duration) error

	// ReadSession returns every bar appended so far for the current session,
	// in append order. Individual entries that fail to decode are skipped and
	// logged, never fatal.
	ReadSession(ctx context.Context, symbol string) ([]candle.RawBar, error)

	// Publish sends a bar on the symbol's live channel.
	Publish(ctx context.Context, symbol string, bar candle.RawBar) error
}

// ListKey is the intraday list key for a symbol.
func ListKey(symbol string) string {
	return "intraday_bars:" + symbol
}

// ChannelName is the live pub/sub channel for a symbol.
func ChannelName(symbol string) string {
	return "live_bars:" + symbol
}
