package models

import "fmt"

// ErrorKind classifies a pipeline failure. Every error is classified into
// exactly one kind at the point of detection and carried unchanged to the
// API boundary.
type ErrorKind string

const (
	ErrKindValidation         ErrorKind = "validation"
	ErrKindDataSource         ErrorKind = "data_source"
	ErrKindNoData             ErrorKind = "no_data"
	ErrKindBackendUnavailable ErrorKind = "backend_unavailable"
	ErrKindBackend            ErrorKind = "backend"
)

// User-facing messages preserved from the original client contract.
const (
	MsgNoStocks            = "No stocks specified for optimization"
	MsgVarPercentRequired  = "VaR percent is required"
	MsgVarPercentRange     = "VaR percent must be between 0 and 100"
	MsgQcSimulatorRequired = "qcSimulator parameter is required for hybrid optimization"
	MsgNoDataAvailable     = "No stock data available for optimization"
	MsgBackendUnavailable  = "Python optimization service is not available"
)

// PipelineError is the classified failure type threaded through the request
// pipeline.
type PipelineError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// ValidationErr builds a validation failure with a user-facing message.
func ValidationErr(message string) *PipelineError {
	return &PipelineError{Kind: ErrKindValidation, Message: message}
}

// DataSourceErr wraps a per-symbol quote fetch failure.
func DataSourceErr(symbol string, err error) *PipelineError {
	return &PipelineError{
		Kind:    ErrKindDataSource,
		Message: fmt.Sprintf("failed to load quotes for %s", symbol),
		Err:     err,
	}
}

// NoDataErr reports an empty normalized dataset.
func NoDataErr() *PipelineError {
	return &PipelineError{Kind: ErrKindNoData, Message: MsgNoDataAvailable}
}

// BackendUnavailableErr reports a failed health gate.
func BackendUnavailableErr() *PipelineError {
	return &PipelineError{Kind: ErrKindBackendUnavailable, Message: MsgBackendUnavailable}
}

// BackendErr wraps a dispatch failure after the health gate passed.
func BackendErr(message string, err error) *PipelineError {
	return &PipelineError{Kind: ErrKindBackend, Message: message, Err: err}
}
