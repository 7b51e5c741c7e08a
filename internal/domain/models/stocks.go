package models

import (
	"fmt"
	"time"

	"QuantumFPO/pkg/util"
)

// Day is a calendar date (no time component) that marshals as "2006-01-02".
type Day struct {
	time.Time
}

// NewDay builds a Day from any time, truncated to midnight UTC.
func NewDay(t time.Time) Day {
	return Day{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(`"` + util.FormatDay(d.Time) + `"`), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid day %q", s)
	}
	t, ok := util.ParseDay(s[1 : len(s)-1])
	if !ok {
		return fmt.Errorf("invalid day %q", s)
	}
	d.Time = t
	return nil
}

func (d Day) String() string {
	return util.FormatDay(d.Time)
}

// Quote is one instrument's price record for one trading day.
// Quotes are unique per (symbol, date) and never mutated after creation.
type Quote struct {
	Symbol string  `json:"symbol"`
	Date   Day     `json:"date"`
	Close  float64 `json:"close"`
	Open   float64 `json:"open,omitempty"`
	High   float64 `json:"high,omitempty"`
	Low    float64 `json:"low,omitempty"`
}

// StockDataPoint is one flattened, backend-ready price record. The remote
// optimizer consumes these as rows of its stock_data payload.
type StockDataPoint struct {
	Symbol string  `json:"symbol"`
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
}
