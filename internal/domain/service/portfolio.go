package service

import (
	"context"

	"QuantumFPO/internal/domain/models"
)

// QuoteSource produces historical daily quotes for one symbol.
// days <= 0 yields an empty result; an empty symbol is a contract violation.
type QuoteSource interface {
	Fetch(ctx context.Context, symbol string, days int) ([]models.Quote, error)
}

// HealthChecker probes the remote optimization service. It never returns an
// error: any transport failure, timeout or non-200 status reads as unhealthy.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// Optimizer submits optimization work to the remote compute service.
// varPercent is the client-side percentage; implementations convert it to a
// fraction on the wire.
type Optimizer interface {
	OptimizeClassical(ctx context.Context, data []models.StockDataPoint, varPercent float64) (*models.RawClassicalResult, error)
	OptimizeHybrid(ctx context.Context, data []models.StockDataPoint, varPercent float64, qcSimulator bool) (*models.RawHybridResult, error)
}

// Metrics records pipeline observations.
type Metrics interface {
	RecordQuoteFetch(provider, outcome string)
	RecordDispatch(mode, outcome string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
