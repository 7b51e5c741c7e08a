package quotes

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"

	"QuantumFPO/internal/domain/models"
	xlogger "QuantumFPO/pkg/logger"
	"QuantumFPO/pkg/util"
)

// SyntheticPrefix marks symbols served by the synthetic generator.
const SyntheticPrefix = "SIM_"

// SyntheticSource generates demo quote histories without any network call.
// The series is seeded by the symbol, so repeated fetches for the same symbol
// produce the same values.
type SyntheticSource struct {
	log *xlogger.Logger
}

func NewSyntheticSource(l *xlogger.Logger) *SyntheticSource {
	return &SyntheticSource{log: l.With("synthetic_quotes")}
}

// Fetch returns exactly days quotes for the most recent days calendar days
// ending today, sorted ascending. Close prices stay within ±10% of a
// per-symbol baseline. days <= 0 yields an empty result.
func (s *SyntheticSource) Fetch(ctx context.Context, symbol string, days int) ([]models.Quote, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if days <= 0 {
		return []models.Quote{}, nil
	}

	rng := rand.New(rand.NewSource(symbolSeed(symbol)))
	baseline := 95 + rng.Float64()*20

	today := util.Today()
	result := make([]models.Quote, 0, days)
	for i := days - 1; i >= 0; i-- {
		close := baseline * (0.9 + 0.2*rng.Float64())
		result = append(result, models.Quote{
			Symbol: symbol,
			Date:   models.NewDay(today.AddDate(0, 0, -i)),
			Close:  close,
		})
	}

	s.log.Debug("generated synthetic history",
		xlogger.String("symbol", symbol),
		xlogger.Int("records", len(result)),
	)
	return result, nil
}

func symbolSeed(symbol string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(symbol))
	return int64(h.Sum64())
}
