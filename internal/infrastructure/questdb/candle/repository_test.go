package candle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/chaitanyamurarka/trading-platform-v5/pkg/questdb/mock"
)

func TestCandleRepository_GetRange(t *testing.T) {
	query := `SELECT timestamp, open, high, low, close, volume
			  FROM ohlc
			  WHERE symbol = $1 AND interval = $2 AND timestamp >= $3 AND timestamp < $4
			  ORDER BY timestamp ASC`

	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(mock *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface)
		query    RangeQuery
		assertFn func(t *testing.T, rows []*Row, err error)
	}{
		{
			name: "success - two rows",
			mockFn: func(mockClient *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mockClient.EXPECT().Query(gomock.Any(), query, "AAPL", "1m", from, to).Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*time.Time) = from
					*dest[1].(*float64) = 185.0
					*dest[2].(*float64) = 185.5
					*dest[3].(*float64) = 184.8
					*dest[4].(*float64) = 185.2
					*dest[5].(*int64) = 1200
					return nil
				})
				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*time.Time) = from.Add(time.Minute)
					*dest[1].(*float64) = 185.2
					*dest[2].(*float64) = 185.9
					*dest[3].(*float64) = 185.1
					*dest[4].(*float64) = 185.7
					*dest[5].(*int64) = 900
					return nil
				})
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Err().Return(nil)
				mockRows.EXPECT().Close()
			},
			query: RangeQuery{Symbol: "AAPL", Interval: "1m", From: from, To: to},
			assertFn: func(t *testing.T, rows []*Row, err error) {
				assert.NoError(t, err)
				assert.Len(t, rows, 2)
				assert.Equal(t, 185.0, rows[0].Open)
				assert.Equal(t, int64(900), rows[1].Volume)
				assert.True(t, rows[0].Timestamp.Before(rows[1].Timestamp))
			},
		},
		{
			name: "success - empty range",
			mockFn: func(mockClient *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mockClient.EXPECT().Query(gomock.Any(), query, "AAPL", "1m", from, to).Return(mockRows, nil)
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Err().Return(nil)
				mockRows.EXPECT().Close()
			},
			query: RangeQuery{Symbol: "AAPL", Interval: "1m", From: from, To: to},
			assertFn: func(t *testing.T, rows []*Row, err error) {
				assert.NoError(t, err)
				assert.Empty(t, rows)
			},
		},
		{
			name: "error - query fails",
			mockFn: func(mockClient *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mockClient.EXPECT().Query(gomock.Any(), query, "AAPL", "1m", from, to).Return(nil, errors.New("connection refused"))
			},
			query: RangeQuery{Symbol: "AAPL", Interval: "1m", From: from, To: to},
			assertFn: func(t *testing.T, rows []*Row, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to query candle range")
			},
		},
		{
			name: "error - scan fails",
			mockFn: func(mockClient *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mockClient.EXPECT().Query(gomock.Any(), query, "AAPL", "1m", from, to).Return(mockRows, nil)
				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().Scan(gomock.Any()).Return(errors.New("scan failed"))
				mockRows.EXPECT().Close()
			},
			query: RangeQuery{Symbol: "AAPL", Interval: "1m", From: from, To: to},
			assertFn: func(t *testing.T, rows []*Row, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to scan candle row")
			},
		},
		{
			name: "error - rows.Err() fails",
			mockFn: func(mockClient *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mockClient.EXPECT().Query(gomock.Any(), query, "AAPL", "1m", from, to).Return(mockRows, nil)
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Err().Return(errors.New("iteration error"))
				mockRows.EXPECT().Close()
			},
			query: RangeQuery{Symbol: "AAPL", Interval: "1m", From: from, To: to},
			assertFn: func(t *testing.T, rows []*Row, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "error iterating rows")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock.NewMockQuestDBClient(ctrl)
			mockRows := mock.NewMockRowsInterface(ctrl)

			tc.mockFn(mockClient, mockRows)

			repo := NewRepository(mockClient)
			rows, err := repo.GetRange(context.Background(), tc.query)
			tc.assertFn(t, rows, err)
		})
	}
}
