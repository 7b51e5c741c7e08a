package models

// LoadStocksRequest asks for historical quotes for a set of symbols.
// Period is a pointer so an explicit zero stays distinguishable from an
// omitted field: only a missing period gets the 30-day default, while a
// non-positive value is rejected.
type LoadStocksRequest struct {
	Stocks []string `json:"stocks" validate:"required,min=1,dive,required"`
	Period *int     `json:"period" default:"30" validate:"required,gt=0"`
}

// PeriodValue returns the requested window, defaulting to 30 days.
func (r *LoadStocksRequest) PeriodValue() int {
	if r.Period == nil {
		return 30
	}
	return *r.Period
}

// OptimizeRequest is the client payload for both optimization kinds.
// VarPercent and QcSimulator are pointers so a missing field is
// distinguishable from a zero value during validation.
type OptimizeRequest struct {
	Stocks      []string `json:"stocks"`
	VarPercent  *float64 `json:"varPercent"`
	QcSimulator *bool    `json:"qcSimulator"`
}

// QcSimulatorValue returns the simulator flag, defaulting to true.
func (r *OptimizeRequest) QcSimulatorValue() bool {
	return r.QcSimulator == nil || *r.QcSimulator
}
