package history

import (
	"context"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
)

//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=mock

// FetchParams identifies one historical query. The fingerprint derived from
// it keys the snapshot cache, so every field that changes the result set is
// part of it.
type FetchParams struct {
	SessionToken string
	Exchange     string
	Symbol       string
	Interval     string
	Start        time.Time
	End          time.Time
	Timezone     string
}

// Usecase serves historical candle data: a fingerprinted initial fetch and
// cursor-based chunk paging over the cached dataset.
type Usecase interface {
	GetInitial(ctx context.Context, params FetchParams) (*candle.HistoricalDataResponse, error)
	GetChunk(ctx context.Context, requestID string, offset, limit int) (*candle.HistoricalDataChunkResponse, error)
}
