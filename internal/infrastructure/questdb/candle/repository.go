package candle

import (
	"context"
	"fmt"

	"github.com/chaitanyamurarka/trading-platform-v5/pkg/questdb"
)

// Repository represents the repository for stored OHLCV rows.
type Repository struct {
	client questdb.QuestDBClient
}

// NewRepository creates a new candle repository.
func NewRepository(client questdb.QuestDBClient) *Repository {
	return &Repository{
		client: client,
	}
}

// GetRange retrieves the ordered OHLCV rows for one symbol and interval within
// [From, To).
func (r *Repository) GetRange(ctx context.Context, q RangeQuery) ([]*Row, error) {
	query := `SELECT timestamp, open, high, low, close, volume
			  FROM ohlc
			  WHERE symbol = $1 AND interval = $2 AND timestamp >= $3 AND timestamp < $4
			  ORDER BY timestamp ASC`

	rows, err := r.client.Query(ctx, query, q.Symbol, q.Interval, q.From, q.To)
	if err != nil {
		return nil, fmt.Errorf("failed to query candle range: %w", err)
	}
	defer rows.Close()

	var result []*Row
	for rows.Next() {
		row := &Row{}
		err := rows.Scan(&row.Timestamp, &row.Open, &row.High, &row.Low, &row.Close, &row.Volume)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candle row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}
