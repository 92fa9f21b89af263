package ingest

// RawTradeEvent is one trade as carried on the feed topic.
type RawTradeEvent struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Size      int64   `json:"size"`
	Timestamp int64   `json:"timestamp"`
}
