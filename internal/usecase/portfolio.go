package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"QuantumFPO/internal/domain/models"
	domsvc "QuantumFPO/internal/domain/service"
	xlogger "QuantumFPO/pkg/logger"
)

// PortfolioUsecase drives the optimization pipeline: validate, load quotes,
// flatten, gate on backend health, dispatch, unify.
type PortfolioUsecase struct {
	quotes          domsvc.QuoteSource
	optimizer       domsvc.Optimizer
	health          domsvc.HealthChecker
	metrics         domsvc.Metrics
	log             *xlogger.Logger
	workers         int
	period          int
	syntheticPrefix string
}

type Options struct {
	Workers         int
	Period          int
	SyntheticPrefix string
}

func NewPortfolioUsecase(
	quotes domsvc.QuoteSource,
	optimizer domsvc.Optimizer,
	health domsvc.HealthChecker,
	metrics domsvc.Metrics,
	log *xlogger.Logger,
	opts Options,
) *PortfolioUsecase {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.Period <= 0 {
		opts.Period = 30
	}
	if opts.SyntheticPrefix == "" {
		opts.SyntheticPrefix = "SIM_"
	}
	return &PortfolioUsecase{
		quotes:          quotes,
		optimizer:       optimizer,
		health:          health,
		metrics:         metrics,
		log:             log.With("portfolio_usecase"),
		workers:         opts.Workers,
		period:          opts.Period,
		syntheticPrefix: opts.SyntheticPrefix,
	}
}

// LoadStocks fetches quote histories for every requested symbol and returns
// them as one flat sequence, symbols in request order and dates ascending
// within each symbol. Unlike the optimization paths, a single failed symbol
// fails the whole request: the caller asked for exactly these series.
func (u *PortfolioUsecase) LoadStocks(ctx context.Context, req *models.LoadStocksRequest) ([]models.Quote, *models.PipelineError) {
	results := u.fetchAll(ctx, req.Stocks, req.PeriodValue())

	var loaded []models.Quote
	for _, r := range results {
		if r.err != nil {
			u.log.Error("quote load failed",
				xlogger.String("symbol", r.symbol),
				xlogger.Error(r.err),
			)
			return nil, u.fail(models.DataSourceErr(r.symbol, r.err))
		}
		loaded = append(loaded, r.quotes...)
	}

	u.log.Info("stocks loaded",
		xlogger.Int("symbols", len(results)),
		xlogger.Int("records", len(loaded)),
		xlogger.Int("period", req.PeriodValue()),
	)
	return loaded, nil
}

// Optimize runs the classical optimization pipeline.
func (u *PortfolioUsecase) Optimize(ctx context.Context, req *models.OptimizeRequest) (*models.UnifiedOptimizationResult, *models.PipelineError) {
	if perr := validateOptimizeRequest(req); perr != nil {
		return nil, u.fail(perr)
	}

	data, perr := u.prepare(ctx, req.Stocks)
	if perr != nil {
		return nil, perr
	}

	started := time.Now()
	raw, err := u.optimizer.OptimizeClassical(ctx, data, *req.VarPercent)
	u.metrics.RecordLatency("dispatch_classical", time.Since(started).Seconds())
	if err != nil {
		u.metrics.RecordDispatch("classical", "error")
		return nil, u.fail(asPipelineErr(err, "classical optimization failed"))
	}
	u.metrics.RecordDispatch("classical", "success")

	return unifyClassical(raw), nil
}

// HybridOptimize runs the quantum-classical hybrid pipeline.
func (u *PortfolioUsecase) HybridOptimize(ctx context.Context, req *models.OptimizeRequest) (*models.UnifiedOptimizationResult, *models.PipelineError) {
	if perr := validateHybridRequest(req); perr != nil {
		return nil, u.fail(perr)
	}

	data, perr := u.prepare(ctx, req.Stocks)
	if perr != nil {
		return nil, perr
	}

	started := time.Now()
	raw, err := u.optimizer.OptimizeHybrid(ctx, data, *req.VarPercent, *req.QcSimulator)
	u.metrics.RecordLatency("dispatch_hybrid", time.Since(started).Seconds())
	if err != nil {
		u.metrics.RecordDispatch("hybrid", "error")
		return nil, u.fail(asPipelineErr(err, "hybrid optimization failed"))
	}
	u.metrics.RecordDispatch("hybrid", "success")

	return unifyHybrid(raw), nil
}

// BackendHealthy exposes the health probe for the status endpoint.
func (u *PortfolioUsecase) BackendHealthy(ctx context.Context) bool {
	return u.health.Healthy(ctx)
}

// prepare loads and flattens quote data, then gates on backend health.
// Per-symbol fetch failures are tolerated here: optimization can proceed on
// the symbols that did load, and only an entirely empty dataset is fatal.
func (u *PortfolioUsecase) prepare(ctx context.Context, symbols []string) ([]models.StockDataPoint, *models.PipelineError) {
	results := u.fetchAll(ctx, symbols, u.period)

	order := make([]string, 0, len(results))
	bySymbol := make(map[string][]models.Quote, len(results))
	for _, r := range results {
		if r.err != nil {
			u.log.Warn("skipping symbol after load failure",
				xlogger.String("symbol", r.symbol),
				xlogger.Error(r.err),
			)
			continue
		}
		order = append(order, r.symbol)
		bySymbol[r.symbol] = r.quotes
	}

	data := flatten(order, bySymbol)
	if len(data) == 0 {
		return nil, u.fail(models.NoDataErr())
	}

	if !u.health.Healthy(ctx) {
		return nil, u.fail(models.BackendUnavailableErr())
	}

	return data, nil
}

type fetchResult struct {
	symbol string
	quotes []models.Quote
	err    error
}

// fetchAll loads all symbols through a bounded worker pool. Results come
// back in request order regardless of completion order.
func (u *PortfolioUsecase) fetchAll(ctx context.Context, symbols []string, days int) []fetchResult {
	results := make([]fetchResult, len(symbols))
	sem := make(chan struct{}, u.workers)
	var wg sync.WaitGroup

	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			started := time.Now()
			quotes, err := u.quotes.Fetch(ctx, symbol, days)
			u.metrics.RecordLatency("quote_fetch", time.Since(started).Seconds())

			outcome := "success"
			if err != nil {
				outcome = "error"
			}
			u.metrics.RecordQuoteFetch(u.providerLabel(symbol), outcome)

			results[i] = fetchResult{symbol: symbol, quotes: quotes, err: err}
		}(i, symbol)
	}

	wg.Wait()
	return results
}

func (u *PortfolioUsecase) providerLabel(symbol string) string {
	if strings.HasPrefix(symbol, u.syntheticPrefix) {
		return "synthetic"
	}
	return "live"
}

func (u *PortfolioUsecase) fail(perr *models.PipelineError) *models.PipelineError {
	u.metrics.RecordError(string(perr.Kind))
	return perr
}

func asPipelineErr(err error, message string) *models.PipelineError {
	var perr *models.PipelineError
	if errors.As(err, &perr) {
		return perr
	}
	return models.BackendErr(message, err)
}
