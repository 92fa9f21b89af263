// Package bootstrap wires the chart data service's dependency graph.
package bootstrap

import (
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/config"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/logger"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/questdb"
	"github.com/chaitanyamurarka/trading-platform-v5/pkg/redis"
)

// Bootstrap is the bootstrap for the chart data service.
type Bootstrap struct {
	Repository Repository
	Store      Store
	Usecase    Usecase
	Logger     logger.Interface

	Config  *config.Config
	QuestDB questdb.QuestDBClient
	Redis   redis.Client
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Config  *config.Config
	QuestDB questdb.QuestDBClient
	Redis   redis.Client
	Logger  logger.Interface
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Config = config.Config
	b.QuestDB = config.QuestDB
	b.Redis = config.Redis
	b.Logger = config.Logger

	b.registerRepository()
	b.registerStore()
	b.registerUsecase()

	return *b
}
