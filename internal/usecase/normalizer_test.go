package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantumFPO/internal/domain/models"
	"QuantumFPO/pkg/util"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	day, ok := util.ParseDay(s)
	require.True(t, ok)
	return day
}

func TestFlatten(t *testing.T) {
	bySymbol := map[string][]models.Quote{
		"AAPL": quotesFor("AAPL", 100, 102),
		"MSFT": quotesFor("MSFT", 300, 305),
	}

	data := flatten([]string{"MSFT", "AAPL"}, bySymbol)
	require.Len(t, data, 4)

	assert.Equal(t, "MSFT", data[0].Symbol, "request order wins over map order")
	assert.Equal(t, "MSFT", data[1].Symbol)
	assert.Equal(t, "AAPL", data[2].Symbol)
	assert.Equal(t, "AAPL", data[3].Symbol)

	assert.Equal(t, "2026-08-01", data[0].Date)
	assert.Equal(t, "2026-08-02", data[1].Date)
	assert.Equal(t, 300.0, data[0].Close)
	assert.Equal(t, 102.0, data[3].Close)
}

func TestFlattenDropsMalformed(t *testing.T) {
	bySymbol := map[string][]models.Quote{
		"AAPL": {
			{Symbol: "AAPL", Date: models.NewDay(mustDay(t, "2026-08-01")), Close: 100},
			{Symbol: "", Date: models.NewDay(mustDay(t, "2026-08-02")), Close: 101},
			{Symbol: "AAPL", Close: 102},
			{Symbol: "AAPL", Date: models.NewDay(mustDay(t, "2026-08-04")), Close: 0},
			{Symbol: "AAPL", Date: models.NewDay(mustDay(t, "2026-08-05")), Close: -3},
		},
	}

	data := flatten([]string{"AAPL"}, bySymbol)
	require.Len(t, data, 1)
	assert.Equal(t, "2026-08-01", data[0].Date)
}

func TestFlattenEmpty(t *testing.T) {
	assert.Empty(t, flatten(nil, nil))
	assert.Empty(t, flatten([]string{"AAPL"}, map[string][]models.Quote{"AAPL": {}}))
}
