package stockwatch

import (
	"errors"
	"math"
	"testing"

	"github.com/etnz/stockwatch/date"
)

func mustValue(t *testing.T, m Metric) float64 {
	t.Helper()
	v, ok := m.Value()
	if !ok {
		t.Fatal("metric is unavailable, want available")
	}
	return v
}

func TestTotalReturnScaleInvariant(t *testing.T) {
	prices := []float64{100, 104, 98, 112, 109}
	base := mustValue(t, totalReturn(seriesOf("A", prices...)))

	for _, scale := range []float64{0.5, 3, 1000} {
		scaled := make([]float64, len(prices))
		for i, p := range prices {
			scaled[i] = p * scale
		}
		got := mustValue(t, totalReturn(seriesOf("A", scaled...)))
		if math.Abs(got-base) > 1e-9 {
			t.Errorf("total return at scale %v = %v, want %v", scale, got, base)
		}
	}
}

func TestMaxDrawdownNeverPositive(t *testing.T) {
	testCases := []struct {
		name   string
		prices []float64
		want   float64 // expected drawdown, NaN to only assert <= 0
	}{
		{"Single point", []float64{42}, 0},
		{"Non decreasing", []float64{1, 1, 2, 3, 3, 5}, 0},
		{"Simple dip", []float64{100, 80, 90}, -0.20},
		{"Deepest of two dips", []float64{100, 90, 120, 60, 100}, -0.50},
		{"Volatile", []float64{10, 14, 9, 13, 8, 15}, math.NaN()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := mustValue(t, maxDrawdown(seriesOf("X", tc.prices...)))
			if got > 0 {
				t.Fatalf("max drawdown = %v, want <= 0", got)
			}
			if !math.IsNaN(tc.want) && math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("max drawdown = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMaxDrawdownZeroOnlyWhenNonDecreasing(t *testing.T) {
	// Any decrease, however small, must yield a strictly negative drawdown.
	got := mustValue(t, maxDrawdown(seriesOf("X", 100, 100.5, 100.4999)))
	if got >= 0 {
		t.Errorf("max drawdown = %v, want < 0 for a decreasing step", got)
	}
}

func TestAnnualizedReturnOverOneYear(t *testing.T) {
	// Over exactly 252 observations the exponent is 1 and the annualized
	// return equals the total return.
	prices := make([]float64, 252)
	for i := range prices {
		prices[i] = 100 * math.Pow(1.0003, float64(i))
	}
	s := seriesOf("Y", prices...)

	total := mustValue(t, totalReturn(s))
	annualized := mustValue(t, annualizedReturn(totalReturn(s), s.Len()))
	if math.Abs(annualized-total) > 1e-9 {
		t.Errorf("annualized = %v, want total return %v", annualized, total)
	}
}

func TestAnnualizedReturnSinglePoint(t *testing.T) {
	if m := annualizedReturn(totalReturn(seriesOf("Y", 100)), 1); m.Ok() {
		t.Error("annualized return on a single observation is available, want unavailable")
	}
}

func TestSharpeUnavailableOnZeroVolatility(t *testing.T) {
	s := constantSeries("FLAT", 50, 10)
	vol := annualizedVolatility(s.Returns())
	if v := mustValue(t, vol); v != 0 {
		t.Fatalf("volatility = %v, want 0", v)
	}
	annualized := annualizedReturn(totalReturn(s), s.Len())
	if m := sharpeRatio(annualized, vol); m.Ok() {
		v, _ := m.Value()
		t.Errorf("sharpe = %v, want unavailable on zero volatility", v)
	}
}

func TestConstantSeriesRoundTrip(t *testing.T) {
	rec := NewPerformanceRecord(constantSeries("FLAT", 25, 10), AvailableMetric(0))

	if got := mustValue(t, rec.TotalReturn); got != 0 {
		t.Errorf("total return = %v, want 0", got)
	}
	if got := mustValue(t, rec.Volatility); got != 0 {
		t.Errorf("volatility = %v, want 0", got)
	}
	if got := mustValue(t, rec.MaxDrawdown); got != 0 {
		t.Errorf("max drawdown = %v, want 0", got)
	}
	if rec.Sharpe.Ok() {
		t.Error("sharpe is available, want unavailable")
	}
	if got := mustValue(t, rec.LatestPrice); got != 25 {
		t.Errorf("latest price = %v, want 25", got)
	}
}

func TestSummarizeInputErrors(t *testing.T) {
	market := fakeMarket{"SPY": {100, 101}}

	if _, err := Summarize(market, nil, date.OneYear, "SPY"); !errors.Is(err, ErrNoInstruments) {
		t.Errorf("empty set error = %v, want ErrNoInstruments", err)
	}
	if _, err := Summarize(market, []string{" ", ""}, date.OneYear, "SPY"); !errors.Is(err, ErrNoInstruments) {
		t.Errorf("blank set error = %v, want ErrNoInstruments", err)
	}
	if _, err := Summarize(market, []string{"AAPL"}, date.OneYear, ""); err == nil {
		t.Error("empty benchmark accepted, want error")
	}
	if _, err := Summarize(market, []string{"AAPL"}, date.OneYear, "NOPE"); err == nil {
		t.Error("unfetchable benchmark accepted, want error")
	}
}

func TestSummarizePartialFailure(t *testing.T) {
	market := fakeMarket{
		"SPY":  {100, 102},
		"GOOD": {100, 110},
		// BAD is absent: the provider fails for it.
	}

	report, err := Summarize(market, []string{"BAD", "GOOD"}, date.OneYear, "SPY")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(report.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(report.Records))
	}

	// Sorted output: the valid record first, the unavailable one last.
	good, bad := report.Records[0], report.Records[1]
	if good.Ticker != "GOOD" || bad.Ticker != "BAD" {
		t.Fatalf("order = [%s %s], want [GOOD BAD]", good.Ticker, bad.Ticker)
	}

	if got := mustValue(t, good.TotalReturn); math.Abs(got-0.10) > 1e-9 {
		t.Errorf("GOOD total return = %v, want 0.10", got)
	}
	if got := mustValue(t, good.VsBenchmark); math.Abs(got-0.08) > 1e-9 {
		t.Errorf("GOOD vs benchmark = %v, want 0.08", got)
	}

	for name, m := range map[string]Metric{
		"total return":      bad.TotalReturn,
		"annualized return": bad.AnnualizedReturn,
		"volatility":        bad.Volatility,
		"sharpe":            bad.Sharpe,
		"max drawdown":      bad.MaxDrawdown,
		"latest price":      bad.LatestPrice,
		"vs benchmark":      bad.VsBenchmark,
	} {
		if m.Ok() {
			t.Errorf("BAD %s is available, want unavailable", name)
		}
	}
}

func TestSummarizeOrdering(t *testing.T) {
	// Input order A, B, C, D with total returns 0.05, unavailable, 0.20,
	// -0.10 must come out as C, A, D, B.
	market := fakeMarket{
		"SPY": {100, 100},
		"A":   {100, 105},
		"C":   {100, 120},
		"D":   {100, 90},
	}

	report, err := Summarize(market, []string{"A", "B", "C", "D"}, date.OneYear, "SPY")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	want := []string{"C", "A", "D", "B"}
	if len(report.Records) != len(want) {
		t.Fatalf("got %d records, want %d", len(report.Records), len(want))
	}
	for i, rec := range report.Records {
		if rec.Ticker != want[i] {
			t.Errorf("record[%d] = %s, want %s", i, rec.Ticker, want[i])
		}
	}
}

func TestSummarizeStableOrderOfUnavailable(t *testing.T) {
	// Several unavailable records keep their input order among themselves.
	market := fakeMarket{"SPY": {100, 101}, "OK": {100, 101}}

	report, err := Summarize(market, []string{"X", "OK", "Y", "Z"}, date.OneYear, "SPY")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	want := []string{"OK", "X", "Y", "Z"}
	for i, rec := range report.Records {
		if rec.Ticker != want[i] {
			t.Errorf("record[%d] = %s, want %s", i, rec.Ticker, want[i])
		}
	}
}

func TestSummarizeIgnoresDuplicates(t *testing.T) {
	market := fakeMarket{"SPY": {100, 101}, "AAPL": {10, 11}}

	report, err := Summarize(market, []string{"AAPL", "AAPL", "AAPL"}, date.OneYear, "SPY")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(report.Records) != 1 {
		t.Errorf("got %d records, want 1", len(report.Records))
	}
}

func TestMetricNeverNaN(t *testing.T) {
	testCases := []struct {
		name  string
		value float64
	}{
		{"NaN", math.NaN()},
		{"PosInf", math.Inf(1)},
		{"NegInf", math.Inf(-1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if m := AvailableMetric(tc.value); m.Ok() {
				t.Errorf("AvailableMetric(%v) is available, want unavailable", tc.value)
			}
		})
	}
}
