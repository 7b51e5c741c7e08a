//go:build wireinject
// +build wireinject

package di

import (
	"QuantumFPO/pkg/config"
	"QuantumFPO/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideMetrics,

		// Service clients
		ProvideQuoteSource,
		ProvideOptimizerClient,
		ProvideOptimizer,
		ProvideHealthChecker,

		// Use cases
		ProvidePortfolioUsecase,

		// HTTP surface
		ProvideStocksHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
