package yahoo

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/etnz/stockwatch"
)

// samplePayload mimics a v8 chart response with an adjusted close column and
// one null cell.
const samplePayload = `{
  "chart": {
    "result": [{
      "meta": {"symbol": "AAPL"},
      "timestamp": [1735801200, 1735887600, 1735974000],
      "indicators": {
        "quote": [{
          "open":   [100.0, 101.0, 102.0],
          "high":   [101.0, 102.0, 103.0],
          "low":    [99.0,  100.0, 101.0],
          "close":  [100.5, 101.5, 102.5],
          "volume": [1000,  2000,  3000]
        }],
        "adjclose": [{"adjclose": [99.5, null, 101.5]}]
      }
    }],
    "error": null
  }
}`

const errorPayload = `{
  "chart": {
    "result": null,
    "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}
  }
}`

func decode(t *testing.T, payload string) *chartResponse {
	t.Helper()
	var content chartResponse
	if err := json.Unmarshal([]byte(payload), &content); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	return &content
}

func TestChartResponseBars(t *testing.T) {
	bars, err := decode(t, samplePayload).bars("AAPL")
	if err != nil {
		t.Fatalf("bars: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("got %d bars, want 3", len(bars))
	}

	if bars[0].AdjClose != 99.5 || bars[0].Close != 100.5 {
		t.Errorf("bar[0] = adj %v close %v, want adj 99.5 close 100.5", bars[0].AdjClose, bars[0].Close)
	}
	// A null cell is NaN, never zero.
	if !math.IsNaN(bars[1].AdjClose) {
		t.Errorf("bar[1].AdjClose = %v, want NaN", bars[1].AdjClose)
	}
	if bars[0].Volume != 1000 {
		t.Errorf("bar[0].Volume = %v, want 1000", bars[0].Volume)
	}
}

func TestChartResponseBarsToSeries(t *testing.T) {
	bars, err := decode(t, samplePayload).bars("AAPL")
	if err != nil {
		t.Fatalf("bars: %v", err)
	}

	// The adjusted close column is present so the series prefers it and
	// skips the null day.
	s, err := stockwatch.NewPriceSeries("AAPL", bars)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("series length = %d, want 2", s.Len())
	}
	if _, latest := s.Latest(); latest != 101.5 {
		t.Errorf("latest = %v, want adjusted close 101.5", latest)
	}
}

func TestChartResponseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"API error", errorPayload},
		{"Empty document", `{"chart": {"result": []}}`},
		{"No timestamps", `{"chart": {"result": [{"indicators": {"quote": [{}]}}]}}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decode(t, tc.payload).bars("AAPL"); err == nil {
				t.Error("bars succeeded, want error")
			}
		})
	}
}
