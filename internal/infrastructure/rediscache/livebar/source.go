package livebar

import (
	"context"
	"net"
	"time"

	v9 "github.com/redis/go-redis/v9"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/stream"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/redis"
)

// SourceFactory opens pub/sub subscriptions on the symbol's live channel.
type SourceFactory struct {
	client redis.Client
	logger logger.Interface
}

// NewSourceFactory creates a factory for live-bar subscriptions.
func NewSourceFactory(client redis.Client, logger logger.Interface) *SourceFactory {
	return &SourceFactory{
		client: client,
		logger: logger,
	}
}

// Subscribe opens a subscription for one symbol.
func (f *SourceFactory) Subscribe(ctx context.Context, symbol string) (stream.BarSource, error) {
	pubSub, err := f.client.Subscribe(ctx, ChannelName(symbol))
	if err != nil {
		return nil, err
	}

	f.logger.InfoContext(ctx, "subscribed to live channel", logger.Field{
		Key:   "channel",
		Value: ChannelName(symbol),
	})

	return &pubSubSource{pubSub: pubSub}, nil
}

// pubSubSource adapts a go-redis PubSub to the stream.BarSource contract.
type pubSubSource struct {
	pubSub *v9.PubSub
}

// Next waits for the next published payload for at most timeout. Non-payload
// frames (subscription confirmations, pongs) count as no message, as does the
// wait expiring.
func (s *pubSubSource) Next(ctx context.Context, timeout time.Duration) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	received, err := s.pubSub.ReceiveTimeout(ctx, timeout)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, stream.ErrNoMessage
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	msg, ok := received.(*v9.Message)
	if !ok {
		return nil, stream.ErrNoMessage
	}
	return []byte(msg.Payload), nil
}

// Close unsubscribes and releases the pub/sub connection.
func (s *pubSubSource) Close() error {
	return s.pubSub.Close()
}
