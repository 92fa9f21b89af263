package bootstrap

import (
	historyDomain "github.com/chaitanyamurarka/trading-platform-v5/internal/domain/history"
	streamDomain "github.com/chaitanyamurarka/trading-platform-v5/internal/domain/stream"
	historyUc "github.com/chaitanyamurarka/trading-platform-v5/internal/usecase/history"
	streamUc "github.com/chaitanyamurarka/trading-platform-v5/internal/usecase/stream"
)

// Usecase is the usecase layer for the chart data service.
type Usecase struct {
	HistoryUsecase     historyDomain.Usecase
	StreamOrchestrator streamDomain.Orchestrator
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.HistoryUsecase = historyUc.NewUsecase(
		b.Repository.CandleRepository,
		b.Store.SnapshotStore,
		b.Logger,
		historyUc.Config{
			InitialFetchLimit: b.Config.History.InitialFetchLimit,
			SnapshotTTL:       b.Config.History.SnapshotTTL,
			UserSnapshotTTL:   b.Config.History.UserSnapshotTTL,
		},
	)
	b.Usecase.StreamOrchestrator = streamUc.NewOrchestrator(
		b.Store.LiveBarStore,
		b.Store.LiveBarSource,
		b.Logger,
		streamUc.Config{
			PollTimeout: b.Config.Stream.PollTimeout,
		},
	)
}
