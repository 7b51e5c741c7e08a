package models

// ResultKind discriminates which optimization variant produced a result.
type ResultKind string

const (
	KindClassical ResultKind = "classical"
	KindHybrid    ResultKind = "hybrid"
)

// ResultStatus is the success/error discriminant of a unified result.
type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusError   ResultStatus = "error"
)

// PerformanceMetrics holds the portfolio-level performance block.
type PerformanceMetrics struct {
	ExpectedAnnualReturn *float64 `json:"expected_annual_return,omitempty"`
	AnnualVolatility     *float64 `json:"annual_volatility,omitempty"`
	SharpeRatio          *float64 `json:"sharpe_ratio,omitempty"`
	ValueAtRisk          *float64 `json:"value_at_risk,omitempty"`
}

// QuantumResult holds the quantum-specific sub-result of a hybrid run.
type QuantumResult struct {
	Solution       []int    `json:"solution,omitempty"`
	ObjectiveValue *float64 `json:"objective_value,omitempty"`
	JobsExecuted   *int     `json:"jobs_executed,omitempty"`
	SimulatorUsed  *bool    `json:"simulator_used,omitempty"`
}

// UnifiedOptimizationResult is the single response shape returned to clients
// for both optimization kinds. Status "error" implies Error is set and every
// result field is absent; status "success" implies Error is empty.
type UnifiedOptimizationResult struct {
	Kind   ResultKind   `json:"kind"`
	Status ResultStatus `json:"status"`
	Error  string       `json:"error,omitempty"`

	ObjectiveValue *float64            `json:"objective_value,omitempty"`
	Weights        map[string]float64  `json:"weights,omitempty"`
	Performance    *PerformanceMetrics `json:"performance,omitempty"`
	Quantum        *QuantumResult      `json:"quantum_result,omitempty"`

	// Hybrid runs carry the three parallel weight sets for comparison.
	ClassicalWeights map[string]float64 `json:"classical_weights,omitempty"`
	QuantumWeights   map[string]float64 `json:"quantum_weights,omitempty"`
	HybridWeights    map[string]float64 `json:"hybrid_weights,omitempty"`
}

// NewErrorResult builds an error-status result carrying only the message.
func NewErrorResult(kind ResultKind, message string) *UnifiedOptimizationResult {
	return &UnifiedOptimizationResult{
		Kind:   kind,
		Status: StatusError,
		Error:  message,
	}
}

// RawClassicalResult mirrors the flat response of /api/optimize/classical.
type RawClassicalResult struct {
	Weights              map[string]float64 `json:"weights"`
	ExpectedAnnualReturn *float64           `json:"expected_annual_return"`
	AnnualVolatility     *float64           `json:"annual_volatility"`
	SharpeRatio          *float64           `json:"sharpe_ratio"`
	ValueAtRisk          *float64           `json:"value_at_risk"`
	ObjectiveValue       *float64           `json:"objective_value"`
}

// RawQuantumResult mirrors the quantum_qaoa_result block of a hybrid response.
type RawQuantumResult struct {
	Solution       []int    `json:"solution"`
	ObjectiveValue *float64 `json:"objective_value"`
	JobsExecuted   *int     `json:"sampler_jobs_executed"`
	SimulatorUsed  *bool    `json:"simulator_used"`
}

// RawHybridResult mirrors the nested response of /api/optimize/hybrid.
type RawHybridResult struct {
	ClassicalWeights     map[string]float64 `json:"classical_weights"`
	ClassicalPerformance map[string]float64 `json:"classical_performance"`
	QuantumWeights       map[string]float64 `json:"quantum_weights"`
	HybridWeights        map[string]float64 `json:"hybrid_weights"`
	QuantumQAOAResult    *RawQuantumResult  `json:"quantum_qaoa_result"`
	ValueAtRisk          *float64           `json:"value_at_risk"`
	ObjectiveValue       *float64           `json:"objective_value"`
}
