package quotes

import (
	"context"
	"fmt"
	"strings"

	"QuantumFPO/internal/domain/models"
	domsvc "QuantumFPO/internal/domain/service"
)

// Router selects between the synthetic generator and the live provider by
// naming convention: symbols carrying the reserved prefix are synthetic.
type Router struct {
	synthetic domsvc.QuoteSource
	live      domsvc.QuoteSource
	prefix    string
}

func NewRouter(synthetic, live domsvc.QuoteSource, prefix string) *Router {
	if prefix == "" {
		prefix = SyntheticPrefix
	}
	return &Router{synthetic: synthetic, live: live, prefix: prefix}
}

func (r *Router) Fetch(ctx context.Context, symbol string, days int) ([]models.Quote, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if strings.HasPrefix(symbol, r.prefix) {
		return r.synthetic.Fetch(ctx, symbol, days)
	}
	return r.live.Fetch(ctx, symbol, days)
}

var _ domsvc.QuoteSource = (*Router)(nil)
