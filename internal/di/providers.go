package di

import (
	"fmt"

	domsvc "QuantumFPO/internal/domain/service"
	"QuantumFPO/internal/handler/api"
	"QuantumFPO/internal/service/optimizer"
	"QuantumFPO/internal/service/quotes"
	"QuantumFPO/internal/usecase"
	"QuantumFPO/pkg/config"
	xlogger "QuantumFPO/pkg/logger"
	"QuantumFPO/pkg/metrics"
	"QuantumFPO/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*xlogger.Logger, error) {
	l, err := xlogger.New(&xlogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() domsvc.Metrics {
	return metrics.New()
}

// ProvideQuoteSource builds the prefix-routed quote source: synthetic
// symbols are generated locally, everything else goes to the live provider.
func ProvideQuoteSource(cfg *config.Config, l *xlogger.Logger) domsvc.QuoteSource {
	synthetic := quotes.NewSyntheticSource(l)
	live := quotes.NewAlphaVantageSource(
		cfg.Quotes.BaseURL,
		cfg.Quotes.APIKey,
		cfg.Quotes.Timeout,
		l,
	)
	return quotes.NewRouter(synthetic, live, cfg.Quotes.SyntheticPrefix)
}

// ProvideOptimizerClient creates the remote optimization service client.
func ProvideOptimizerClient(cfg *config.Config, l *xlogger.Logger) *optimizer.Client {
	return optimizer.NewClient(
		cfg.Optimizer.BaseURL,
		cfg.Optimizer.Timeout,
		cfg.Optimizer.HealthTimeout,
		l,
	)
}

// ProvideOptimizer exposes the client as the dispatch interface.
func ProvideOptimizer(client *optimizer.Client) domsvc.Optimizer {
	return client
}

// ProvideHealthChecker exposes the client as the health gate.
func ProvideHealthChecker(client *optimizer.Client) domsvc.HealthChecker {
	return client
}

// ProvidePortfolioUsecase creates the pipeline orchestrator.
func ProvidePortfolioUsecase(
	src domsvc.QuoteSource,
	opt domsvc.Optimizer,
	health domsvc.HealthChecker,
	m domsvc.Metrics,
	l *xlogger.Logger,
	cfg *config.Config,
) *usecase.PortfolioUsecase {
	return usecase.NewPortfolioUsecase(src, opt, health, m, l, usecase.Options{
		Workers:         cfg.Quotes.Workers,
		Period:          cfg.Quotes.DefaultPeriod,
		SyntheticPrefix: cfg.Quotes.SyntheticPrefix,
	})
}

// ProvideStocksHandler creates the HTTP handler.
func ProvideStocksHandler(u *usecase.PortfolioUsecase, l *xlogger.Logger) *api.StocksHandler {
	return api.NewStocksHandler(u, l)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler *api.StocksHandler, l *xlogger.Logger) *server.App {
	return server.New(cfg, handler, l)
}
