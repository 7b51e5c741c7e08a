package optimizer

import (
	"context"
	"io"
	"net/http"
	"time"

	"QuantumFPO/internal/domain/models"
	xhttp "QuantumFPO/pkg/http"
	xlogger "QuantumFPO/pkg/logger"
)

// Client talks to the remote Python optimization service. Health probes run
// on a short-timeout client, optimization dispatch on a long-timeout one:
// optimization runs are expected to take tens of seconds, a health probe is
// not.
type Client struct {
	baseURL string
	health  *xhttp.Client
	api     *xhttp.Client
	log     *xlogger.Logger
}

func NewClient(baseURL string, dispatchTimeout, healthTimeout time.Duration, l *xlogger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		health:  xhttp.NewClient(xhttp.WithTimeout(healthTimeout)),
		api:     xhttp.NewClient(xhttp.WithTimeout(dispatchTimeout)),
		log:     l.With("optimizer_client"),
	}
}

// Healthy probes GET /health. Only a 200 counts as healthy; transport
// failures and timeouts read as unhealthy, never as errors.
func (c *Client) Healthy(ctx context.Context) bool {
	resp, err := c.health.SendRequest(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/health",
	})
	if err != nil {
		c.log.Debug("health probe failed", xlogger.Error(err))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

type classicalRequest struct {
	StockData  []models.StockDataPoint `json:"stock_data"`
	VarPercent float64                 `json:"var_percent"`
}

type hybridRequest struct {
	StockData   []models.StockDataPoint `json:"stock_data"`
	VarPercent  float64                 `json:"var_percent"`
	QcSimulator bool                    `json:"qc_simulator"`
}

// OptimizeClassical posts the dataset to /api/optimize/classical. The
// client-side percentage is converted to a fraction on the wire.
func (c *Client) OptimizeClassical(ctx context.Context, data []models.StockDataPoint, varPercent float64) (*models.RawClassicalResult, error) {
	started := time.Now()

	var result models.RawClassicalResult
	err := c.api.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/api/optimize/classical",
		Body: classicalRequest{
			StockData:  data,
			VarPercent: varPercent / 100,
		},
	}, &result)
	if err != nil {
		return nil, models.BackendErr("classical optimization failed", err)
	}
	if result.Weights == nil {
		return nil, models.BackendErr("classical optimization returned no weights", nil)
	}

	c.log.Info("classical optimization completed",
		xlogger.Int("records", len(data)),
		xlogger.Int("assets", len(result.Weights)),
		xlogger.Duration("took", time.Since(started)),
	)
	return &result, nil
}

// OptimizeHybrid posts the dataset to /api/optimize/hybrid.
func (c *Client) OptimizeHybrid(ctx context.Context, data []models.StockDataPoint, varPercent float64, qcSimulator bool) (*models.RawHybridResult, error) {
	started := time.Now()

	var result models.RawHybridResult
	err := c.api.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/api/optimize/hybrid",
		Body: hybridRequest{
			StockData:   data,
			VarPercent:  varPercent / 100,
			QcSimulator: qcSimulator,
		},
	}, &result)
	if err != nil {
		return nil, models.BackendErr("hybrid optimization failed", err)
	}
	if result.HybridWeights == nil {
		return nil, models.BackendErr("hybrid optimization returned no weights", nil)
	}

	c.log.Info("hybrid optimization completed",
		xlogger.Int("records", len(data)),
		xlogger.Int("assets", len(result.HybridWeights)),
		xlogger.Bool("qc_simulator", qcSimulator),
		xlogger.Duration("took", time.Since(started)),
	)
	return &result, nil
}
