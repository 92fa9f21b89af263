package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "chart-data-service", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)

	assert.Equal(t, 5000, cfg.History.InitialFetchLimit)
	assert.Equal(t, 5000, cfg.History.ChunkLimit)
	assert.Equal(t, time.Hour, cfg.History.SnapshotTTL)
	assert.Equal(t, 35*time.Minute, cfg.History.UserSnapshotTTL)

	assert.Equal(t, 10*time.Second, cfg.Stream.PollTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Stream.IntradayListTTL)

	assert.Equal(t, "trades", cfg.TradeKafka.Topic)
	assert.Equal(t, "live-bar-ingestor", cfg.TradeKafka.ConsumerGroup)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("HISTORY_INITIAL_FETCH_LIMIT", "100")
	t.Setenv("STREAM_POLL_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, 100, cfg.History.InitialFetchLimit)
	assert.Equal(t, 2*time.Second, cfg.Stream.PollTimeout)
}
