package usecase

import "QuantumFPO/internal/domain/models"

// unifyClassical lifts a flat backend response into the unified result shape.
func unifyClassical(raw *models.RawClassicalResult) *models.UnifiedOptimizationResult {
	return &models.UnifiedOptimizationResult{
		Kind:           models.KindClassical,
		Status:         models.StatusSuccess,
		ObjectiveValue: raw.ObjectiveValue,
		Weights:        raw.Weights,
		Performance: &models.PerformanceMetrics{
			ExpectedAnnualReturn: raw.ExpectedAnnualReturn,
			AnnualVolatility:     raw.AnnualVolatility,
			SharpeRatio:          raw.SharpeRatio,
			ValueAtRisk:          raw.ValueAtRisk,
		},
	}
}

// unifyHybrid lifts a nested hybrid response into the unified result shape.
// The hybrid weights are the primary result: they become the top-level
// Weights, while all three weight sets stay available for comparison.
func unifyHybrid(raw *models.RawHybridResult) *models.UnifiedOptimizationResult {
	result := &models.UnifiedOptimizationResult{
		Kind:             models.KindHybrid,
		Status:           models.StatusSuccess,
		ObjectiveValue:   raw.ObjectiveValue,
		Weights:          raw.HybridWeights,
		ClassicalWeights: raw.ClassicalWeights,
		QuantumWeights:   raw.QuantumWeights,
		HybridWeights:    raw.HybridWeights,
		Performance:      hybridPerformance(raw),
	}
	if raw.QuantumQAOAResult != nil {
		result.Quantum = &models.QuantumResult{
			Solution:       raw.QuantumQAOAResult.Solution,
			ObjectiveValue: raw.QuantumQAOAResult.ObjectiveValue,
			JobsExecuted:   raw.QuantumQAOAResult.JobsExecuted,
			SimulatorUsed:  raw.QuantumQAOAResult.SimulatorUsed,
		}
	}
	return result
}

func hybridPerformance(raw *models.RawHybridResult) *models.PerformanceMetrics {
	perf := &models.PerformanceMetrics{ValueAtRisk: raw.ValueAtRisk}
	if v, ok := raw.ClassicalPerformance["expected_annual_return"]; ok {
		value := v
		perf.ExpectedAnnualReturn = &value
	}
	if v, ok := raw.ClassicalPerformance["annual_volatility"]; ok {
		value := v
		perf.AnnualVolatility = &value
	}
	if v, ok := raw.ClassicalPerformance["sharpe_ratio"]; ok {
		value := v
		perf.SharpeRatio = &value
	}
	return perf
}
