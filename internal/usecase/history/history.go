// Package history serves fingerprinted historical candle queries out of a
// point-in-time snapshot cache, paging large datasets without re-querying the
// long-term store.
package history

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	historydomain "github.com/chaitanyamurarka/trading-platform-v5/internal/domain/history"
	qdbcandle "github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/questdb/candle"
	"github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/rediscache/snapshot"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/errors"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/interval"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
)

// Config holds the history usecase tunables.
type Config struct {
	// InitialFetchLimit bounds the first page of a new session: at most the
	// last InitialFetchLimit candles of the full dataset are returned.
	InitialFetchLimit int

	// SnapshotTTL is the lifetime of shared (aggregated-interval) snapshots.
	SnapshotTTL time.Duration

	// UserSnapshotTTL is the lifetime of per-session 1-second snapshots.
	UserSnapshotTTL time.Duration
}

// Usecase is the usecase for historical candle data.
type Usecase struct {
	candles   qdbcandle.CandleRepository
	snapshots snapshot.Store
	logger    logger.Interface
	config    Config

	// group serializes concurrent builds of the same fingerprint so one
	// expensive range query serves every waiter.
	group singleflight.Group
}

// NewUsecase creates a new history usecase.
func NewUsecase(candles qdbcandle.CandleRepository, snapshots snapshot.Store, logger logger.Interface, config Config) *Usecase {
	return &Usecase{
		candles:   candles,
		snapshots: snapshots,
		logger:    logger,
		config:    config,
	}
}

// GetInitial serves the initial historical fetch for a query: the cached
// dataset when the fingerprint is live, otherwise a fresh build from the
// long-term store. The returned page is anchored to "now": at most the last
// InitialFetchLimit candles, with the offset the client scrolls back from.
func (u *Usecase) GetInitial(ctx context.Context, params historydomain.FetchParams) (*candle.HistoricalDataResponse, error) {
	if !interval.IsValidInterval(params.Interval) {
		return nil, errors.NewErrorDetails(
			fmt.Sprintf("unsupported interval %q", params.Interval),
			string(errors.InvalidIntervalError),
			"interval",
		)
	}

	requestID := Fingerprint(params)

	data, found := u.lookup(ctx, requestID)
	if !found {
		built, err, _ := u.group.Do(requestID, func() (interface{}, error) {
			// Re-check under the flight: a concurrent builder may have
			// populated the key while this caller waited.
			if data, found := u.lookup(ctx, requestID); found {
				return data, nil
			}
			return u.build(ctx, requestID, params)
		})
		if err != nil {
			return nil, err
		}
		data = built.(candle.List)
	}

	total := len(data)
	if total == 0 {
		return &candle.HistoricalDataResponse{
			Candles:        candle.List{},
			TotalAvailable: 0,
			IsPartial:      false,
			Message:        "No data available for this range.",
		}, nil
	}

	initialOffset := total - u.config.InitialFetchLimit
	if initialOffset < 0 {
		initialOffset = 0
	}
	page := data[initialOffset:]

	return &candle.HistoricalDataResponse{
		RequestID:      requestID,
		Candles:        page,
		Offset:         initialOffset,
		TotalAvailable: total,
		IsPartial:      total > len(page),
		Message:        fmt.Sprintf("Initial data loaded. Displaying last %d of %d candles.", len(page), total),
	}, nil
}

// GetChunk serves one page of an already-built snapshot. An unknown or
// expired requestID is a distinct not-found condition; an out-of-range offset
// is not an error, it returns an empty page with the correct total so the
// client can detect "no more data".
func (u *Usecase) GetChunk(ctx context.Context, requestID string, offset, limit int) (*candle.HistoricalDataChunkResponse, error) {
	data, found := u.lookup(ctx, requestID)
	if !found {
		return nil, errors.NewErrorDetails(
			"data for this request not found or has expired",
			string(errors.SnapshotNotFoundError),
			"request_id",
		)
	}

	total := len(data)
	if offset < 0 || offset >= total {
		return &candle.HistoricalDataChunkResponse{
			Candles:        candle.List{},
			Offset:         offset,
			Limit:          limit,
			TotalAvailable: total,
		}, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return &candle.HistoricalDataChunkResponse{
		Candles:        data[offset:end],
		Offset:         offset,
		Limit:          limit,
		TotalAvailable: total,
	}, nil
}

// lookup reads the snapshot cache. Any read-side failure degrades to a miss:
// the cache self-heals by rebuilding.
func (u *Usecase) lookup(ctx context.Context, key string) (candle.List, bool) {
	data, found, err := u.snapshots.Get(ctx, key)
	if err != nil {
		u.logger.WarnContext(ctx, "snapshot read failed, treating as miss", logger.Field{
			Key:   "key",
			Value: key,
		}, logger.Field{
			Key:   "error",
			Value: err.Error(),
		})
		return nil, false
	}
	return data, found
}

// build issues the bounded range query, applies the display-timezone encoding
// to every row, and caches the materialized dataset. An empty result is not
// cached: the data may simply not have arrived yet.
func (u *Usecase) build(ctx context.Context, key string, params historydomain.FetchParams) (candle.List, error) {
	u.logger.InfoContext(ctx, "snapshot cache miss, querying store", logger.Field{
		Key:   "key",
		Value: key,
	})

	loc, fellBack := interval.ResolveLocation(params.Timezone)
	if fellBack {
		u.logger.WarnContext(ctx, "unknown timezone, defaulting to UTC", logger.Field{
			Key:   "timezone",
			Value: params.Timezone,
		})
	}

	rows, err := u.candles.GetRange(ctx, qdbcandle.RangeQuery{
		Symbol:   params.Symbol,
		Interval: params.Interval,
		From:     params.Start,
		To:       params.End,
	})
	if err != nil {
		u.logger.ErrorContext(ctx, errors.TracerFromError(err), logger.Field{
			Key:   "symbol",
			Value: params.Symbol,
		})
		return nil, errors.NewErrorDetails(
			"failed to retrieve data from the time-series store",
			string(errors.StoreUnavailableError),
			"store",
		)
	}

	data := make(candle.List, 0, len(rows))
	for _, row := range rows {
		data = append(data, candle.Candle{
			Timestamp:     row.Timestamp,
			Open:          row.Open,
			High:          row.High,
			Low:           row.Low,
			Close:         row.Close,
			Volume:        row.Volume,
			UnixTimestamp: interval.FakeUnix(row.Timestamp.In(loc)),
		})
	}

	if len(data) == 0 {
		return data, nil
	}

	ttl := u.config.SnapshotTTL
	if params.Interval == "1s" && params.SessionToken != "" {
		ttl = u.config.UserSnapshotTTL
	}

	if err := u.snapshots.Set(ctx, key, data, ttl); err != nil {
		// A failed write only costs the next caller a rebuild.
		u.logger.WarnContext(ctx, "snapshot write failed", logger.Field{
			Key:   "key",
			Value: key,
		}, logger.Field{
			Key:   "error",
			Value: err.Error(),
		})
		return data, nil
	}

	u.logger.InfoContext(ctx, "snapshot cached", logger.Field{
		Key:   "key",
		Value: key,
	}, logger.Field{
		Key:   "records",
		Value: len(data),
	})

	return data, nil
}
