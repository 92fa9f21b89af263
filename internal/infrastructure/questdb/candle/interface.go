package candle

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// CandleRepository represents the repository interface for stored OHLCV rows.
type CandleRepository interface {
	GetRange(ctx context.Context, query RangeQuery) ([]*Row, error)
}
