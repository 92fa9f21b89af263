package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	redis_mock "github.com/chaitanyamurarka/trading-platform-v5/pkg/redis/mock"
)

func testCandles(t *testing.T) (candle.List, string) {
	t.Helper()
	data := candle.List{
		{
			Timestamp:     time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			Open:          100,
			High:          101,
			Low:           99,
			Close:         99,
			Volume:        22,
			UnixTimestamp: 1705312800,
		},
	}
	payload, err := json.Marshal(data)
	require.NoError(t, err)
	return data, string(payload)
}

func TestSnapshotStore_Get(t *testing.T) {
	key := "ohlc:NASDAQ:AAPL:1m:2024-01-15T00:00:00Z_2024-01-16T00:00:00Z:UTC"

	testCases := []struct {
		name     string
		mockFn   func(t *testing.T, client *redis_mock.MockClient)
		assertFn func(t *testing.T, data candle.List, found bool, err error)
	}{
		{
			name: "success - hit",
			mockFn: func(t *testing.T, client *redis_mock.MockClient) {
				_, payload := testCandles(t)
				client.EXPECT().Get(gomock.Any(), key).Return(payload, nil)
			},
			assertFn: func(t *testing.T, data candle.List, found bool, err error) {
				assert.NoError(t, err)
				assert.True(t, found)
				require.Len(t, data, 1)
				assert.Equal(t, 99.0, data[0].Close)
			},
		},
		{
			name: "miss - empty payload",
			mockFn: func(t *testing.T, client *redis_mock.MockClient) {
				client.EXPECT().Get(gomock.Any(), key).Return("", nil)
			},
			assertFn: func(t *testing.T, data candle.List, found bool, err error) {
				assert.NoError(t, err)
				assert.False(t, found)
				assert.Nil(t, data)
			},
		},
		{
			name: "miss - undecodable payload is not an error",
			mockFn: func(t *testing.T, client *redis_mock.MockClient) {
				client.EXPECT().Get(gomock.Any(), key).Return("{corrupted", nil)
			},
			assertFn: func(t *testing.T, data candle.List, found bool, err error) {
				assert.NoError(t, err)
				assert.False(t, found)
				assert.Nil(t, data)
			},
		},
		{
			name: "error - client fails",
			mockFn: func(t *testing.T, client *redis_mock.MockClient) {
				client.EXPECT().Get(gomock.Any(), key).Return("", errors.New("connection lost"))
			},
			assertFn: func(t *testing.T, data candle.List, found bool, err error) {
				assert.Error(t, err)
				assert.False(t, found)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := redis_mock.NewMockClient(ctrl)
			tc.mockFn(t, client)

			log, err := logger.NewLogger()
			require.NoError(t, err)

			data, found, getErr := NewRedisStore(client, log).Get(context.Background(), key)
			tc.assertFn(t, data, found, getErr)
		})
	}
}

func TestSnapshotStore_Set(t *testing.T) {
	key := "ohlc:NASDAQ:AAPL:1m:2024-01-15T00:00:00Z_2024-01-16T00:00:00Z:UTC"

	testCases := []struct {
		name     string
		mockFn   func(t *testing.T, client *redis_mock.MockClient, data candle.List)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(t *testing.T, client *redis_mock.MockClient, data candle.List) {
				payload, err := json.Marshal(data)
				require.NoError(t, err)
				client.EXPECT().Set(gomock.Any(), key, payload, time.Hour).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error - client fails",
			mockFn: func(t *testing.T, client *redis_mock.MockClient, data candle.List) {
				client.EXPECT().Set(gomock.Any(), key, gomock.Any(), time.Hour).Return(errors.New("oom"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := redis_mock.NewMockClient(ctrl)
			data, _ := testCandles(t)
			tc.mockFn(t, client, data)

			log, err := logger.NewLogger()
			require.NoError(t, err)

			setErr := NewRedisStore(client, log).Set(context.Background(), key, data, time.Hour)
			tc.assertFn(t, setErr)
		})
	}
}
