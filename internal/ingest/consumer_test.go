package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/domain/candle"
	livebarMock "github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/rediscache/livebar/mock"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/config"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
)

func newTestConsumer(t *testing.T, liveBars *livebarMock.MockStore) *TradeConsumer {
	t.Helper()
	log, err := logger.NewLogger()
	require.NoError(t, err)
	return NewTradeConsumer(config.TradeKafkaConfig{
		Brokers:       []string{"localhost:9092"},
		Topic:         "trades",
		ConsumerGroup: "live-bar-ingestor",
	}, log, liveBars, 24*time.Hour)
}

func trade(symbol string, price float64, size, timestamp int64) *RawTradeEvent {
	return &RawTradeEvent{Symbol: symbol, Price: price, Size: size, Timestamp: timestamp}
}

func TestTradeConsumer_HandleTrade(t *testing.T) {
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC).Unix()

	testCases := []struct {
		name     string
		trades   []*RawTradeEvent
		mockFn   func(liveBars *livebarMock.MockStore)
		assertFn func(t *testing.T, c *TradeConsumer)
	}{
		{
			name: "trades within one second fold into one bar",
			trades: []*RawTradeEvent{
				trade("AAPL", 185.0, 100, base),
				trade("AAPL", 185.4, 50, base),
				trade("AAPL", 184.8, 25, base),
			},
			mockFn: func(liveBars *livebarMock.MockStore) {},
			assertFn: func(t *testing.T, c *TradeConsumer) {
				bar := c.CurrentBar("AAPL")
				require.NotNil(t, bar)
				assert.Equal(t, base, bar.Timestamp)
				assert.Equal(t, 185.0, bar.Open)
				assert.Equal(t, 185.4, bar.High)
				assert.Equal(t, 184.8, bar.Low)
				assert.Equal(t, 184.8, bar.Close)
				assert.Equal(t, int64(175), bar.Volume)
			},
		},
		{
			name: "second advance publishes the finished bar",
			trades: []*RawTradeEvent{
				trade("AAPL", 185.0, 100, base),
				trade("AAPL", 185.2, 10, base+1),
			},
			mockFn: func(liveBars *livebarMock.MockStore) {
				finished := candle.RawBar{
					Timestamp: base,
					Open:      185.0,
					High:      185.0,
					Low:       185.0,
					Close:     185.0,
					Volume:    100,
				}
				liveBars.EXPECT().Publish(gomock.Any(), "AAPL", finished).Return(nil)
				liveBars.EXPECT().Append(gomock.Any(), "AAPL", finished, 24*time.Hour).Return(nil)
			},
			assertFn: func(t *testing.T, c *TradeConsumer) {
				bar := c.CurrentBar("AAPL")
				require.NotNil(t, bar)
				assert.Equal(t, base+1, bar.Timestamp)
				assert.Equal(t, 185.2, bar.Open)
				assert.Equal(t, int64(10), bar.Volume)
			},
		},
		{
			name: "symbols aggregate independently",
			trades: []*RawTradeEvent{
				trade("AAPL", 185.0, 100, base),
				trade("MSFT", 402.0, 30, base),
			},
			mockFn: func(liveBars *livebarMock.MockStore) {},
			assertFn: func(t *testing.T, c *TradeConsumer) {
				require.NotNil(t, c.CurrentBar("AAPL"))
				require.NotNil(t, c.CurrentBar("MSFT"))
				assert.Equal(t, 402.0, c.CurrentBar("MSFT").Open)
			},
		},
		{
			name: "non-positive price or size is discarded",
			trades: []*RawTradeEvent{
				trade("AAPL", 0, 100, base),
				trade("AAPL", -1, 100, base),
				trade("AAPL", 185.0, 0, base),
			},
			mockFn: func(liveBars *livebarMock.MockStore) {},
			assertFn: func(t *testing.T, c *TradeConsumer) {
				assert.Nil(t, c.CurrentBar("AAPL"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			liveBars := livebarMock.NewMockStore(ctrl)
			tc.mockFn(liveBars)

			c := newTestConsumer(t, liveBars)
			for _, tr := range tc.trades {
				require.NoError(t, c.HandleTrade(context.Background(), tr))
			}

			tc.assertFn(t, c)
		})
	}
}

func TestTradeConsumer_CurrentBarIsACopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := newTestConsumer(t, livebarMock.NewMockStore(ctrl))
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC).Unix()

	require.NoError(t, c.HandleTrade(context.Background(), trade("AAPL", 185.0, 100, base)))

	bar := c.CurrentBar("AAPL")
	bar.Volume = 999

	assert.Equal(t, int64(100), c.CurrentBar("AAPL").Volume)
}

// Subscribe must not outlive Start: a cancelled context has to unwind both
// goroutines or the ingestor's WaitGroup never returns on shutdown.
func TestTradeConsumer_ShutdownReleasesSubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := newTestConsumer(t, livebarMock.NewMockStore(ctrl))
	ctx, cancel := context.WithCancel(context.Background())

	subscribed := make(chan struct{})
	go func() {
		c.Subscribe(ctx)
		close(subscribed)
	}()
	go c.Start(ctx)

	cancel()
	require.NoError(t, c.Stop())

	select {
	case <-subscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("Subscribe still blocked after shutdown")
	}
}
