package stockwatch

import (
	"math"
	"testing"

	"github.com/etnz/stockwatch/date"
)

func TestNewPriceSeriesPrefersAdjustedClose(t *testing.T) {
	bars := make([]Bar, 0, 3)
	for i, p := range []float64{100, 110, 120} {
		b := NewBar(seriesStart.Add(i))
		b.Close = p
		b.AdjClose = p / 2 // adjusted close disagrees on purpose
		bars = append(bars, b)
	}

	s, err := NewPriceSeries("TEST", bars)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	if _, got := s.Latest(); got != 60 {
		t.Errorf("Latest = %v, want adjusted close 60", got)
	}
}

func TestNewPriceSeriesFallsBackToClose(t *testing.T) {
	bars := []Bar{NewBar(seriesStart), NewBar(seriesStart.Add(1))}
	bars[0].Close = 10
	bars[1].Close = 12

	s, err := NewPriceSeries("TEST", bars)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestNewPriceSeriesInvalid(t *testing.T) {
	testCases := []struct {
		name string
		bars []Bar
	}{
		{"No bars", nil},
		{"No price field", []Bar{NewBar(seriesStart)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPriceSeries("TEST", tc.bars); err == nil {
				t.Error("NewPriceSeries succeeded, want error")
			}
		})
	}
}

func TestNewPriceSeriesSkipsGaps(t *testing.T) {
	// Adjusted close exists in the response but is missing on one day:
	// that day is skipped, not zero-filled.
	bars := []Bar{NewBar(seriesStart), NewBar(seriesStart.Add(1)), NewBar(seriesStart.Add(2))}
	bars[0].AdjClose = 10
	bars[1].Close = 11 // close only, while the series uses adjusted close
	bars[2].AdjClose = 12

	s, err := NewPriceSeries("TEST", bars)
	if err != nil {
		t.Fatalf("NewPriceSeries: %v", err)
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Len = %d, want 2 (gap day skipped)", got)
	}
	if _, ok := s.prices.Get(date.MustParse("2025-01-02")); ok {
		t.Error("gap day is present in the series")
	}
}

func TestReturns(t *testing.T) {
	s := seriesOf("TEST", 100, 110, 99)
	got := s.Returns()
	want := []float64{0.10, -0.10}
	if len(got) != len(want) {
		t.Fatalf("len(Returns) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Returns[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := seriesOf("ONE", 100).Returns(); got != nil {
		t.Errorf("Returns on single point = %v, want nil", got)
	}
}
