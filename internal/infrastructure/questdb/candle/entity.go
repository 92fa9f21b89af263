package candle

import (
	"time"
)

// Row is one raw OHLCV row as returned by the long-term store for a range
// query. Timestamps are real UTC instants; the display-timezone encoding is
// applied later, at the cache-build boundary.
type Row struct {
	Timestamp time.Time
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
}

// RangeQuery bounds one range query against the store.
type RangeQuery struct {
	Symbol   string
	Interval string
	From     time.Time
	To       time.Time
}
