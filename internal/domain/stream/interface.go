package stream

import (
	"context"
	"errors"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// ErrNoMessage is returned by BarSource.Next when the bounded wait expires
// with nothing to deliver. The caller re-polls; this is how a teardown request
// is observed promptly instead of blocking indefinitely.
var ErrNoMessage = errors.New("no message within wait window")

// BarSource yields raw live-bar payloads for one symbol, in the order the
// underlying channel delivered them.
type BarSource interface {
	// Next blocks for at most timeout waiting for the next payload. It
	// returns ErrNoMessage on wait expiry and the context's error when ctx is
	// done.
	Next(ctx context.Context, timeout time.Duration) ([]byte, error)

	// Close unsubscribes from the underlying channel. Safe to call once the
	// connection is being torn down; must never be skipped.
	Close() error
}

// SourceFactory opens a live subscription for a symbol.
type SourceFactory interface {
	Subscribe(ctx context.Context, symbol string) (BarSource, error)
}

// Sink receives the orchestrator's output, typically a websocket connection.
type Sink interface {
	SendBatch(ctx context.Context, msg candle.BatchMessage) error
	SendUpdate(ctx context.Context, msg candle.StreamMessage) error
}

// Params identifies one live subscription.
type Params struct {
	Symbol   string
	Interval string
	Timezone string
}

// Orchestrator drives one live connection from backfill through live updates
// until the sink or the context goes away.
type Orchestrator interface {
	Run(ctx context.Context, params Params, sink Sink) error
}
