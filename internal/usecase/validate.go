package usecase

import "QuantumFPO/internal/domain/models"

// validateOptimizeRequest checks the shared preconditions of both
// optimization kinds. Checks run in order and stop at the first failure, so
// a request missing everything reports the stocks problem first.
func validateOptimizeRequest(req *models.OptimizeRequest) *models.PipelineError {
	if len(req.Stocks) == 0 {
		return models.ValidationErr(models.MsgNoStocks)
	}
	if req.VarPercent == nil {
		return models.ValidationErr(models.MsgVarPercentRequired)
	}
	if *req.VarPercent < 0 || *req.VarPercent > 100 {
		return models.ValidationErr(models.MsgVarPercentRange)
	}
	return nil
}

// validateHybridRequest additionally requires the simulator flag to be
// explicit: silently falling back to a simulator when the caller expected
// quantum hardware would be misleading.
func validateHybridRequest(req *models.OptimizeRequest) *models.PipelineError {
	if err := validateOptimizeRequest(req); err != nil {
		return err
	}
	if req.QcSimulator == nil {
		return models.ValidationErr(models.MsgQcSimulatorRequired)
	}
	return nil
}
