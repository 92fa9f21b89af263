package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/chaitanyamurarka/trading-platform-v5/pkg/questdb"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/redis"
)

// Config represents the application configuration.
type Config struct {
	App        AppConfig        `envPrefix:"APP_"`
	Redis      redis.Config     `envPrefix:"REDIS_"`
	QuestDB    questdb.Config   `envPrefix:"QUESTDB_"`
	History    HistoryConfig    `envPrefix:"HISTORY_"`
	Stream     StreamConfig     `envPrefix:"STREAM_"`
	TradeKafka TradeKafkaConfig `envPrefix:"TRADE_KAFKA_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"chart-data-service"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// HistoryConfig holds the historical snapshot cache settings.
type HistoryConfig struct {
	InitialFetchLimit int           `env:"INITIAL_FETCH_LIMIT" envDefault:"5000"`
	ChunkLimit        int           `env:"CHUNK_LIMIT" envDefault:"5000"`
	SnapshotTTL       time.Duration `env:"SNAPSHOT_TTL" envDefault:"1h"`
	UserSnapshotTTL   time.Duration `env:"USER_SNAPSHOT_TTL" envDefault:"35m"`
}

// StreamConfig holds the live streaming settings.
type StreamConfig struct {
	// PollTimeout bounds each wait on the live subscription and therefore the
	// worst-case shutdown latency of a connection.
	PollTimeout     time.Duration `env:"POLL_TIMEOUT" envDefault:"10s"`
	IntradayListTTL time.Duration `env:"INTRADAY_LIST_TTL" envDefault:"24h"`
}

// TradeKafkaConfig represents the trade feed Kafka configuration.
type TradeKafkaConfig struct {
	Brokers       []string `env:"BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic         string   `env:"TOPIC" envDefault:"trades"`
	ConsumerGroup string   `env:"CONSUMER_GROUP" envDefault:"live-bar-ingestor"`
	MaxRetries    int      `env:"MAX_RETRIES" envDefault:"3"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
