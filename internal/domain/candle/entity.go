package candle

import (
	"time"
)

// Candle represents a single OHLCV bar for one bucket. Once emitted as a
// completed bar it is never mutated again.
//
// UnixTimestamp carries the bucket start encoded with the fake-UTC wire
// convention (see pkg/interval.FakeUnix); Timestamp keeps the real instant for
// logging and range bookkeeping.
type Candle struct {
	Timestamp     time.Time `json:"timestamp"`
	Open          float64   `json:"open"`
	High          float64   `json:"high"`
	Low           float64   `json:"low"`
	Close         float64   `json:"close"`
	Volume        int64     `json:"volume"`
	UnixTimestamp int64     `json:"unix_timestamp"`
}

// List is a list of candles.
type List []Candle

// RawBar is one raw 1-second bar as carried on the live channel and the
// intraday list: `{timestamp (epoch seconds, UTC), open, high, low, close,
// volume}`.
type RawBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    int64   `json:"volume"`
}

// Time returns the bar's timestamp as a UTC instant.
func (b RawBar) Time() time.Time {
	return time.Unix(b.Timestamp, 0).UTC()
}

// StreamMessage is sent to the client once per incoming live bar. Either field
// may be absent: CompletedBar only when a bucket just closed, CurrentBar as
// the live state of the still-forming bucket.
type StreamMessage struct {
	CompletedBar *Candle `json:"completed_bar"`
	CurrentBar   *Candle `json:"current_bar"`
}

// BatchMessage is the single backfill message sent when a stream connects,
// carrying the consistent initial state for the current session.
type BatchMessage struct {
	Candles List `json:"candles"`
}

// HistoricalDataResponse is the response for an initial historical fetch.
type HistoricalDataResponse struct {
	RequestID      string `json:"request_id,omitempty"`
	Candles        List   `json:"candles"`
	Offset         int    `json:"offset"`
	TotalAvailable int    `json:"total_available"`
	IsPartial      bool   `json:"is_partial"`
	Message        string `json:"message"`
}

// HistoricalDataChunkResponse is the response for a subsequent chunk fetch.
type HistoricalDataChunkResponse struct {
	Candles        List `json:"candles"`
	Offset         int  `json:"offset"`
	Limit          int  `json:"limit"`
	TotalAvailable int  `json:"total_available"`
}

// SessionInfo returns a new session token to the client.
type SessionInfo struct {
	SessionToken string `json:"session_token"`
}
