package bootstrap

import (
	candleInfra "github.com/chaitanyamurarka/trading-platform-v5/internal/infrastructure/questdb/candle"
)

// Repository is the long-term store access layer.
type Repository struct {
	CandleRepository candleInfra.CandleRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.CandleRepository = candleInfra.NewRepository(b.QuestDB)
}
