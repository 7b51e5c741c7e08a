package quotes

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"QuantumFPO/internal/domain/models"
	xhttp "QuantumFPO/pkg/http"
	xlogger "QuantumFPO/pkg/logger"
	"QuantumFPO/pkg/util"
)

// Field keys of the Alpha Vantage daily time series.
const (
	fieldOpen  = "1. open"
	fieldHigh  = "2. high"
	fieldLow   = "3. low"
	fieldClose = "4. close"
)

// AlphaVantageSource fetches historical daily quotes from the Alpha Vantage
// REST API, one GET per symbol.
type AlphaVantageSource struct {
	baseURL string
	apiKey  string
	client  *xhttp.Client
	log     *xlogger.Logger
}

func NewAlphaVantageSource(baseURL, apiKey string, timeout time.Duration, l *xlogger.Logger) *AlphaVantageSource {
	return &AlphaVantageSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  xhttp.NewClient(xhttp.WithTimeout(timeout)),
		log:     l.With("alphavantage"),
	}
}

// dailySeries mirrors the nested date→OHLC response shape.
type dailySeries struct {
	Series       map[string]map[string]string `json:"Time Series (Daily)"`
	Note         string                       `json:"Note"`
	ErrorMessage string                       `json:"Error Message"`
}

// Fetch returns at most days records sorted ascending by date. Dates missing
// a parseable close price are dropped, not propagated.
func (s *AlphaVantageSource) Fetch(ctx context.Context, symbol string, days int) ([]models.Quote, error) {
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if days <= 0 {
		return []models.Quote{}, nil
	}

	var resp dailySeries
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.baseURL + "/query",
		QueryParams: map[string][]string{
			"function":   {"TIME_SERIES_DAILY"},
			"symbol":     {symbol},
			"outputsize": {"compact"},
			"apikey":     {s.apiKey},
		},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}

	if len(resp.Series) == 0 {
		if resp.ErrorMessage != "" {
			return nil, fmt.Errorf("fetch %s: %s", symbol, resp.ErrorMessage)
		}
		if resp.Note != "" {
			return nil, fmt.Errorf("fetch %s: %s", symbol, resp.Note)
		}
		return nil, fmt.Errorf("fetch %s: empty time series", symbol)
	}

	quotes := make([]models.Quote, 0, len(resp.Series))
	for date, fields := range resp.Series {
		day, ok := util.ParseDay(date)
		if !ok {
			continue
		}
		close, ok := parseField(fields, fieldClose)
		if !ok {
			s.log.Debug("dropping record without close",
				xlogger.String("symbol", symbol),
				xlogger.String("date", date),
			)
			continue
		}
		q := models.Quote{
			Symbol: symbol,
			Date:   models.NewDay(day),
			Close:  close,
		}
		if open, ok := parseField(fields, fieldOpen); ok {
			q.Open = open
		}
		if high, ok := parseField(fields, fieldHigh); ok {
			q.High = high
		}
		if low, ok := parseField(fields, fieldLow); ok {
			q.Low = low
		}
		quotes = append(quotes, q)
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].Date.Before(quotes[j].Date.Time)
	})
	if len(quotes) > days {
		quotes = quotes[len(quotes)-days:]
	}

	s.log.Debug("fetched quote history",
		xlogger.String("symbol", symbol),
		xlogger.Int("records", len(quotes)),
	)
	return quotes, nil
}

func parseField(fields map[string]string, key string) (float64, bool) {
	raw, ok := fields[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
