package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/rediscache/livebar"
	"github.com/chaitanyamurarka/trading-platform-v5/internal/ingest"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/config"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/redis"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	redisClient := redis.NewClient(lg, &cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		lg.Error(err)
		os.Exit(1)
	}
	defer redisClient.Disconnect(ctx)

	liveBars := livebar.NewRedisStore(redisClient, lg)
	tradeConsumer := ingest.NewTradeConsumer(cfg.TradeKafka, lg, liveBars, cfg.Stream.IntradayListTTL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		tradeConsumer.Start(ctx)
	}()

	go func() {
		defer wg.Done()
		tradeConsumer.Subscribe(ctx)
	}()

	<-quit

	lg.Info("shutting down trade ingestor")
	cancel()
	if err := tradeConsumer.Stop(); err != nil {
		lg.Error(err)
	}
	wg.Wait()

	lg.Info("trade ingestor stopped")
}
