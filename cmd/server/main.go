package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chaitanyamurarka/trading-platform-v5/internal/bootstrap"
	"github.com/chaitanyamurarka/trading-platform-v5/internal/server"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/config"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/questdb"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/redis"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer lg.Sync()

	questdbClient, err := questdb.NewClient(ctx, cfg.QuestDB)
	if err != nil {
		lg.Error(err)
		os.Exit(1)
	}
	defer questdbClient.Close()

	redisClient := redis.NewClient(lg, &cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		lg.Error(err)
		os.Exit(1)
	}
	defer redisClient.Disconnect(ctx)

	b := bootstrap.Bootstrap{}
	b.Init(bootstrap.BootstrapConfig{
		Config:  cfg,
		QuestDB: questdbClient,
		Redis:   redisClient,
		Logger:  lg,
	})

	srv := server.New(b.Usecase.HistoryUsecase, b.Usecase.StreamOrchestrator, lg, cfg.History.ChunkLimit)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: srv.Handler(),
	}

	go func() {
		lg.Info("chart data service listening",
			logger.NewField("app", cfg.App.Name),
			logger.NewField("environment", cfg.App.Environment),
			logger.NewField("port", cfg.App.Port),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error(err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("shutting down chart data service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		lg.Error(err)
	}

	lg.Info("chart data service stopped")
}
