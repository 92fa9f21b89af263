// Package resample folds an ordered stream of fine-grained bars into candles
// of a coarser target interval.
package resample

import (
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/interval"
)

// Resampler aggregates raw bars for one symbol into candles of one target
// interval. Input bars are assumed monotonically non-decreasing in source
// time, the same guarantee the upstream feed provides; the resampler does not
// re-sort.
//
// A Resampler is owned by exactly one connection and is not safe for
// concurrent use.
type Resampler struct {
	interval interval.Interval
	loc      *time.Location

	current    *candle.Candle
	lastBucket int64
}

// New creates a Resampler for the given target interval, bucketing in loc.
func New(iv interval.Interval, loc *time.Location) *Resampler {
	if loc == nil {
		loc = time.UTC
	}
	return &Resampler{
		interval: iv,
		loc:      loc,
	}
}

// Add feeds one raw bar into the resampler. When the bar opens a new bucket,
// the previous bucket's candle is returned as completed; otherwise nil.
//
// A completed candle is emitted exactly once and never mutated afterwards.
// Bars whose bucket lies before the current one are merged into the current
// bucket rather than rejected; the upstream feed only reorders within a
// bucket's reach in practice, and dropping them would under-count volume.
func (r *Resampler) Add(bar candle.RawBar) *candle.Candle {
	bucketStart := r.interval.BucketStart(bar.Time(), r.loc)
	bucketUnix := interval.FakeUnix(bucketStart)

	var completed *candle.Candle

	switch {
	case r.current == nil:
		r.current = newCandle(bucketStart, bucketUnix, bar)
	case bucketUnix > r.current.UnixTimestamp:
		completed = r.current
		r.current = newCandle(bucketStart, bucketUnix, bar)
	default:
		// Same bucket, or an out-of-order bar: merge.
		r.merge(bar)
	}

	r.lastBucket = bucketUnix
	return completed
}

// Current returns a copy of the still-forming candle, or nil if no bar has
// been seen yet. Reading it never affects aggregation state.
func (r *Resampler) Current() *candle.Candle {
	if r.current == nil {
		return nil
	}
	current := *r.current
	return &current
}

func (r *Resampler) merge(bar candle.RawBar) {
	if bar.High > r.current.High {
		r.current.High = bar.High
	}
	if bar.Low < r.current.Low {
		r.current.Low = bar.Low
	}
	r.current.Close = bar.Close
	r.current.Volume += bar.Volume
}

func newCandle(bucketStart time.Time, bucketUnix int64, bar candle.RawBar) *candle.Candle {
	return &candle.Candle{
		Timestamp:     bucketStart,
		Open:          bar.Open,
		High:          bar.High,
		Low:           bar.Low,
		Close:         bar.Close,
		Volume:        bar.Volume,
		UnixTimestamp: bucketUnix,
	}
}
