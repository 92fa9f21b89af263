// Package stream coordinates one live connection: a cached intraday backfill
// replayed through a resampler, then a seamless live continuation from the
// broker channel.
package stream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	streamdomain "github.com/chaitanyamurarka/trading-platform-v5/internal/domain/stream"
	"github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/rediscache/livebar"
	"github.com/chaitanyamurarka/trading-platform-v5/internal/resample"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/errors"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/interval"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
)

// Config holds the stream orchestrator tunables.
type Config struct {
	// PollTimeout bounds each wait on the live subscription. It is also the
	// worst-case latency for observing a teardown request, so it must stay
	// finite.
	PollTimeout time.Duration
}

// Orchestrator runs live connections. Each call to Run owns its own resampler
// state; nothing is shared across connections, even for the same symbol and
// interval.
type Orchestrator struct {
	liveBars livebar.Store
	sources  streamdomain.SourceFactory
	logger   logger.Interface
	config   Config
}

// NewOrchestrator creates a new stream orchestrator.
func NewOrchestrator(liveBars livebar.Store, sources streamdomain.SourceFactory, logger logger.Interface, config Config) *Orchestrator {
	return &Orchestrator{
		liveBars: liveBars,
		sources:  sources,
		logger:   logger,
		config:   config,
	}
}

var _ streamdomain.Orchestrator = (*Orchestrator)(nil)

// Run drives one connection from backfill through live updates until ctx is
// cancelled, the sink fails, or the subscription breaks. The live
// subscription is always released on the way out, whichever branch exits.
func (o *Orchestrator) Run(ctx context.Context, params streamdomain.Params, sink streamdomain.Sink) error {
	iv, err := interval.GetInterval(params.Interval)
	if err != nil {
		return errors.NewErrorDetails(err.Error(), string(errors.InvalidIntervalError), "interval")
	}

	loc, fellBack := interval.ResolveLocation(params.Timezone)
	if fellBack {
		o.logger.WarnContext(ctx, "unknown timezone, defaulting to UTC", logger.Field{
			Key:   "timezone",
			Value: params.Timezone,
		})
	}

	resampler := resample.New(iv, loc)

	if err := o.backfill(ctx, params.Symbol, resampler, sink); err != nil {
		return err
	}

	source, err := o.sources.Subscribe(ctx, params.Symbol)
	if err != nil {
		return errors.TracerFromError(err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			o.logger.WarnContext(ctx, "failed to release live subscription", logger.Field{
				Key:   "symbol",
				Value: params.Symbol,
			}, logger.Field{
				Key:   "error",
				Value: err.Error(),
			})
		}
		o.logger.InfoContext(ctx, "live stream closed", logger.Field{
			Key:   "symbol",
			Value: params.Symbol,
		}, logger.Field{
			Key:   "interval",
			Value: params.Interval,
		})
	}()

	return o.stream(ctx, params.Symbol, resampler, source, sink)
}

// backfill replays the session's intraday bars through the connection's
// resampler and sends the result as one batch: every completed candle plus
// the still-forming one, so the last bar of the backfill is never dropped.
// The same resampler then continues with the live feed, which is what keeps
// buckets from being double-counted or skipped across the seam.
func (o *Orchestrator) backfill(ctx context.Context, symbol string, resampler *resample.Resampler, sink streamdomain.Sink) error {
	bars, err := o.liveBars.ReadSession(ctx, symbol)
	if err != nil {
		// A missing backfill degrades the first paint, nothing more: the
		// stream still starts from live data.
		o.logger.WarnContext(ctx, "intraday backfill unavailable", logger.Field{
			Key:   "symbol",
			Value: symbol,
		}, logger.Field{
			Key:   "error",
			Value: err.Error(),
		})
		bars = nil
	}

	batch := make(candle.List, 0, len(bars))
	for _, bar := range bars {
		if completed := resampler.Add(bar); completed != nil {
			batch = append(batch, *completed)
		}
	}
	if current := resampler.Current(); current != nil {
		batch = append(batch, *current)
	}

	if err := sink.SendBatch(ctx, candle.BatchMessage{Candles: batch}); err != nil {
		return errors.TracerFromError(err)
	}

	o.logger.InfoContext(ctx, "backfill sent", logger.Field{
		Key:   "symbol",
		Value: symbol,
	}, logger.Field{
		Key:   "candles",
		Value: len(batch),
	})

	return nil
}

// stream consumes the live subscription until the connection goes away. Each
// wait is bounded by PollTimeout; expiry just re-polls so a cancelled context
// is observed promptly.
func (o *Orchestrator) stream(ctx context.Context, symbol string, resampler *resample.Resampler, source streamdomain.BarSource, sink streamdomain.Sink) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		payload, err := source.Next(ctx, o.config.PollTimeout)
		if err != nil {
			if err == streamdomain.ErrNoMessage {
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return errors.TracerFromError(err)
		}

		var bar candle.RawBar
		if err := json.Unmarshal(payload, &bar); err != nil {
			// A malformed payload never advances resampler state and never
			// terminates the connection.
			o.logger.WarnContext(ctx, "skipping undecodable live bar", logger.Field{
				Key:   "symbol",
				Value: symbol,
			}, logger.Field{
				Key:   "error",
				Value: err.Error(),
			})
			continue
		}

		msg := candle.StreamMessage{
			CompletedBar: resampler.Add(bar),
			CurrentBar:   resampler.Current(),
		}
		if err := sink.SendUpdate(ctx, msg); err != nil {
			return errors.TracerFromError(err)
		}
	}
}
