package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantumFPO/internal/domain/models"
)

func TestUnifyClassical(t *testing.T) {
	result := unifyClassical(classicalFixture())

	assert.Equal(t, models.KindClassical, result.Kind)
	assert.Equal(t, models.StatusSuccess, result.Status)
	assert.Empty(t, result.Error)
	assert.Equal(t, map[string]float64{"AAPL": 0.6, "MSFT": 0.4}, result.Weights)

	require.NotNil(t, result.Performance)
	assert.Equal(t, 0.12, *result.Performance.ExpectedAnnualReturn)
	assert.Equal(t, 0.18, *result.Performance.AnnualVolatility)
	assert.Equal(t, 0.55, *result.Performance.SharpeRatio)
	assert.Equal(t, -0.031, *result.Performance.ValueAtRisk)

	assert.Nil(t, result.Quantum)
	assert.Nil(t, result.HybridWeights)
}

func TestUnifyHybrid(t *testing.T) {
	result := unifyHybrid(hybridFixture())

	assert.Equal(t, models.KindHybrid, result.Kind)
	assert.Equal(t, models.StatusSuccess, result.Status)

	assert.Equal(t, result.HybridWeights, result.Weights)
	assert.Equal(t, map[string]float64{"AAPL": 0.55, "MSFT": 0.45}, result.HybridWeights)
	assert.Equal(t, map[string]float64{"AAPL": 0.6, "MSFT": 0.4}, result.ClassicalWeights)
	assert.Equal(t, map[string]float64{"AAPL": 0.5, "MSFT": 0.5}, result.QuantumWeights)

	require.NotNil(t, result.Quantum)
	assert.Equal(t, []int{1, 0}, result.Quantum.Solution)
	require.NotNil(t, result.Quantum.JobsExecuted)
	assert.Equal(t, 3, *result.Quantum.JobsExecuted)

	require.NotNil(t, result.Performance)
	assert.Equal(t, 0.55, *result.Performance.SharpeRatio)
	assert.Equal(t, -0.042, *result.Performance.ValueAtRisk)
	assert.Nil(t, result.Performance.ExpectedAnnualReturn)
}

func TestUnifyHybridWithoutQuantumBlock(t *testing.T) {
	raw := hybridFixture()
	raw.QuantumQAOAResult = nil

	result := unifyHybrid(raw)
	assert.Nil(t, result.Quantum)
	assert.Equal(t, models.StatusSuccess, result.Status)
}

func TestErrorResultShape(t *testing.T) {
	result := models.NewErrorResult(models.KindClassical, models.MsgBackendUnavailable)

	body, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "classical", decoded["kind"])
	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, models.MsgBackendUnavailable, decoded["error"])

	_, hasWeights := decoded["weights"]
	assert.False(t, hasWeights, "error results carry no result fields")
	_, hasPerf := decoded["performance"]
	assert.False(t, hasPerf)
}
