package usecase

import (
	"QuantumFPO/internal/domain/models"
)

// flatten turns per-symbol quote series into the flat, backend-ready row set.
// Symbols appear in request order, rows within a symbol in date order.
// Quotes with an empty symbol, a zero date or a non-positive close are
// dropped rather than sent to the optimizer.
func flatten(order []string, bySymbol map[string][]models.Quote) []models.StockDataPoint {
	total := 0
	for _, quotes := range bySymbol {
		total += len(quotes)
	}

	out := make([]models.StockDataPoint, 0, total)
	for _, symbol := range order {
		for _, q := range bySymbol[symbol] {
			if q.Symbol == "" || q.Date.IsZero() || q.Close <= 0 {
				continue
			}
			out = append(out, models.StockDataPoint{
				Symbol: q.Symbol,
				Date:   q.Date.String(),
				Close:  q.Close,
			})
		}
	}
	return out
}
