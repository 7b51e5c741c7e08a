package optimizer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantumFPO/internal/domain/models"
	xlogger "QuantumFPO/pkg/logger"
)

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func testData() []models.StockDataPoint {
	return []models.StockDataPoint{
		{Symbol: "AAPL", Date: "2026-08-26", Close: 100.0},
		{Symbol: "AAPL", Date: "2026-08-27", Close: 102.5},
		{Symbol: "MSFT", Date: "2026-08-26", Close: 300.0},
		{Symbol: "MSFT", Date: "2026-08-27", Close: 305.0},
	}
}

func TestHealthy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{"ok", http.StatusOK, true},
		{"server error", http.StatusInternalServerError, false},
		{"not found", http.StatusNotFound, false},
		{"accepted is not healthy", http.StatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, time.Second, testLogger(t))
			assert.Equal(t, tt.want, c.Healthy(context.Background()))
		})
	}
}

func TestHealthyUnreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", time.Second, 200*time.Millisecond, testLogger(t))
	assert.False(t, c.Healthy(context.Background()))
}

func TestOptimizeClassical(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/optimize/classical", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.InDelta(t, 0.05, req["var_percent"], 1e-9, "percentage converts to fraction")
		assert.Len(t, req["stock_data"], 4)
		_, hasSimulator := req["qc_simulator"]
		assert.False(t, hasSimulator)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"weights": {"AAPL": 0.6, "MSFT": 0.4},
			"expected_annual_return": 0.12,
			"annual_volatility": 0.18,
			"sharpe_ratio": 0.55,
			"value_at_risk": -0.031
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, time.Second, testLogger(t))

	result, err := c.OptimizeClassical(context.Background(), testData(), 5.0)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"AAPL": 0.6, "MSFT": 0.4}, result.Weights)
	require.NotNil(t, result.SharpeRatio)
	assert.Equal(t, 0.55, *result.SharpeRatio)
	require.NotNil(t, result.ValueAtRisk)
	assert.Equal(t, -0.031, *result.ValueAtRisk)
}

func TestOptimizeClassicalBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "solver blew up", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, time.Second, testLogger(t))

	_, err := c.OptimizeClassical(context.Background(), testData(), 5.0)
	require.Error(t, err)

	var perr *models.PipelineError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.ErrKindBackend, perr.Kind)
}

func TestOptimizeClassicalMissingWeights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sharpe_ratio": 0.55}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, time.Second, testLogger(t))

	_, err := c.OptimizeClassical(context.Background(), testData(), 5.0)
	require.Error(t, err)

	var perr *models.PipelineError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.ErrKindBackend, perr.Kind)
}

func TestOptimizeHybrid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/optimize/hybrid", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, false, req["qc_simulator"])
		assert.InDelta(t, 0.10, req["var_percent"], 1e-9)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"classical_weights": {"AAPL": 0.6, "MSFT": 0.4},
			"classical_performance": {"expected_annual_return": 0.12, "sharpe_ratio": 0.55},
			"quantum_weights": {"AAPL": 0.5, "MSFT": 0.5},
			"hybrid_weights": {"AAPL": 0.55, "MSFT": 0.45},
			"quantum_qaoa_result": {
				"solution": [1, 0],
				"objective_value": -0.021,
				"sampler_jobs_executed": 3,
				"simulator_used": false
			},
			"value_at_risk": -0.042
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, time.Second, testLogger(t))

	result, err := c.OptimizeHybrid(context.Background(), testData(), 10.0, false)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"AAPL": 0.55, "MSFT": 0.45}, result.HybridWeights)
	assert.Equal(t, map[string]float64{"AAPL": 0.5, "MSFT": 0.5}, result.QuantumWeights)
	require.NotNil(t, result.QuantumQAOAResult)
	assert.Equal(t, []int{1, 0}, result.QuantumQAOAResult.Solution)
	require.NotNil(t, result.QuantumQAOAResult.JobsExecuted)
	assert.Equal(t, 3, *result.QuantumQAOAResult.JobsExecuted)
	require.NotNil(t, result.QuantumQAOAResult.SimulatorUsed)
	assert.False(t, *result.QuantumQAOAResult.SimulatorUsed)
}

func TestOptimizeHybridMissingWeights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"classical_weights": {"AAPL": 1.0}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, time.Second, testLogger(t))

	_, err := c.OptimizeHybrid(context.Background(), testData(), 5.0, true)
	require.Error(t, err)

	var perr *models.PipelineError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, models.ErrKindBackend, perr.Kind)
}
