package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"QuantumFPO/internal/domain/models"
	xhttp "QuantumFPO/pkg/http"
	xlogger "QuantumFPO/pkg/logger"
)

// PortfolioService is the pipeline surface the handler needs.
type PortfolioService interface {
	LoadStocks(ctx context.Context, req *models.LoadStocksRequest) ([]models.Quote, *models.PipelineError)
	Optimize(ctx context.Context, req *models.OptimizeRequest) (*models.UnifiedOptimizationResult, *models.PipelineError)
	HybridOptimize(ctx context.Context, req *models.OptimizeRequest) (*models.UnifiedOptimizationResult, *models.PipelineError)
	BackendHealthy(ctx context.Context) bool
}

// StocksHandler exposes the portfolio endpoints.
type StocksHandler struct {
	portfolio PortfolioService
	log       *xlogger.Logger
}

func NewStocksHandler(portfolio PortfolioService, l *xlogger.Logger) *StocksHandler {
	return &StocksHandler{portfolio: portfolio, log: l.With("stocks_handler")}
}

func (h *StocksHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/stocks")
	g.POST("/load", h.LoadStocks)
	g.POST("/optimize", h.Optimize)
	g.POST("/hybrid-optimize", h.HybridOptimize)
	g.GET("/python-api/health", h.BackendHealth)
}

// LoadStocks handles POST /api/stocks/load.
func (h *StocksHandler) LoadStocks(c echo.Context) error {
	var req models.LoadStocksRequest
	if verrs := xhttp.ReadAndValidateRequest(c, &req); verrs != nil {
		return xhttp.BadRequestResponse(c, verrs)
	}

	loaded, perr := h.portfolio.LoadStocks(c.Request().Context(), &req)
	if perr != nil {
		code := "ERR_" + strings.ToUpper(string(perr.Kind))
		appErr := xhttp.NewAppError(code, perr.Message, statusForKind(perr.Kind)).WithError(perr.Err)
		return xhttp.AppErrorResponse(c, appErr)
	}

	return xhttp.SuccessResponse(c, loaded)
}

// Optimize handles POST /api/stocks/optimize.
func (h *StocksHandler) Optimize(c echo.Context) error {
	return h.runOptimization(c, models.KindClassical, h.portfolio.Optimize)
}

// HybridOptimize handles POST /api/stocks/hybrid-optimize.
func (h *StocksHandler) HybridOptimize(c echo.Context) error {
	return h.runOptimization(c, models.KindHybrid, h.portfolio.HybridOptimize)
}

func (h *StocksHandler) runOptimization(
	c echo.Context,
	kind models.ResultKind,
	run func(context.Context, *models.OptimizeRequest) (*models.UnifiedOptimizationResult, *models.PipelineError),
) error {
	var req models.OptimizeRequest
	if err := c.Bind(&req); err != nil {
		return xhttp.BadRequestResponse(c, models.NewErrorResult(kind, "invalid request body"))
	}

	result, perr := run(c.Request().Context(), &req)
	if perr != nil {
		h.log.Warn("optimization failed",
			xlogger.String("kind", string(kind)),
			xlogger.String("error_kind", string(perr.Kind)),
			xlogger.Error(perr),
		)
		return xhttp.DataResponse(c, statusForKind(perr.Kind), models.NewErrorResult(kind, perr.Message))
	}

	return xhttp.SuccessResponse(c, result)
}

// BackendHealth handles GET /api/stocks/python-api/health.
func (h *StocksHandler) BackendHealth(c echo.Context) error {
	healthy := h.portfolio.BackendHealthy(c.Request().Context())

	body := map[string]interface{}{
		"python_api_healthy": healthy,
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	}
	if !healthy {
		body["message"] = models.MsgBackendUnavailable
		return xhttp.ServiceUnavailableResponse(c, body)
	}

	body["message"] = "Python optimization service is available"
	return xhttp.SuccessResponse(c, body)
}

// statusForKind maps a pipeline error kind to an HTTP status. Validation and
// empty-dataset problems are the caller's fault, an unavailable backend is a
// 503, everything else is a 500.
func statusForKind(kind models.ErrorKind) int {
	switch kind {
	case models.ErrKindValidation, models.ErrKindNoData:
		return http.StatusBadRequest
	case models.ErrKindBackendUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
