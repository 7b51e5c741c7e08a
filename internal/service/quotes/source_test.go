package quotes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantumFPO/internal/domain/models"
)

type recordingSource struct {
	symbols []string
}

func (r *recordingSource) Fetch(ctx context.Context, symbol string, days int) ([]models.Quote, error) {
	r.symbols = append(r.symbols, symbol)
	return []models.Quote{}, nil
}

func TestRouterDispatchesByPrefix(t *testing.T) {
	synthetic := &recordingSource{}
	live := &recordingSource{}
	router := NewRouter(synthetic, live, SyntheticPrefix)

	_, err := router.Fetch(context.Background(), "SIM_AAPL", 10)
	require.NoError(t, err)
	_, err = router.Fetch(context.Background(), "AAPL", 10)
	require.NoError(t, err)
	_, err = router.Fetch(context.Background(), "MSFT", 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"SIM_AAPL"}, synthetic.symbols)
	assert.Equal(t, []string{"AAPL", "MSFT"}, live.symbols)
}

func TestRouterEmptySymbol(t *testing.T) {
	router := NewRouter(&recordingSource{}, &recordingSource{}, "")

	_, err := router.Fetch(context.Background(), "", 10)
	assert.Error(t, err)
}
