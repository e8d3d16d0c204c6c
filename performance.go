package stockwatch

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/etnz/stockwatch/date"
)

// tradingDays is the number of trading days used to annualize daily figures.
const tradingDays = 252

// ErrNoInstruments is returned when a summary is requested for an empty
// instrument set.
var ErrNoInstruments = errors.New("no instruments requested")

// MarketData is the market data provider collaborator: it returns the daily
// price series of an instrument over a lookback window.
//
// Implementations are responsible for their own request pacing; a failed
// request is reported as an error and is not retried here.
type MarketData interface {
	Daily(ticker string, lookback date.Lookback) (PriceSeries, error)
}

// PerformanceRecord holds the computed performance statistics of one
// instrument. Every metric is either available and finite, or explicitly
// unavailable; the zero value is a fully unavailable record.
type PerformanceRecord struct {
	Ticker           string
	Sector           string // GICS sector label when known, empty otherwise
	TotalReturn      Metric
	AnnualizedReturn Metric
	Volatility       Metric
	Sharpe           Metric
	MaxDrawdown      Metric
	LatestPrice      Metric
	VsBenchmark      Metric
}

// PerformanceReport is the set of performance records of one summary
// invocation, one record per requested instrument, sorted by descending
// total return. It is constructed fresh per invocation and never mutated
// afterwards.
type PerformanceReport struct {
	Date      date.Date
	Lookback  date.Lookback
	Benchmark string
	Records   []PerformanceRecord
}

// Summarize computes the performance summary of the given instruments over a
// lookback window, against a benchmark instrument.
//
// Duplicate tickers are ignored. An empty instrument set or a benchmark that
// cannot be fetched is an input error, reported before any instrument fetch.
// A provider failure or an empty series for an instrument downgrades that
// instrument's record to fully unavailable and never aborts the batch: the
// report always contains exactly one record per requested instrument.
func Summarize(src MarketData, tickers []string, lookback date.Lookback, benchmark string) (*PerformanceReport, error) {
	uniq := dedupe(tickers)
	if len(uniq) == 0 {
		return nil, ErrNoInstruments
	}
	if strings.TrimSpace(benchmark) == "" {
		return nil, errors.New("no benchmark instrument")
	}

	// The benchmark is fetched once per report and must itself be fetchable.
	bench, err := src.Daily(benchmark, lookback)
	if err != nil {
		return nil, fmt.Errorf("benchmark %q is not fetchable: %w", benchmark, err)
	}
	benchTotal := totalReturn(bench)

	report := &PerformanceReport{
		Date:      date.Today(),
		Lookback:  lookback,
		Benchmark: benchmark,
	}
	for _, ticker := range uniq {
		series, err := src.Daily(ticker, lookback)
		if err != nil {
			log.Printf("no data for %s over %s: %v", ticker, lookback, err)
			report.Records = append(report.Records, PerformanceRecord{Ticker: ticker})
			continue
		}
		report.Records = append(report.Records, NewPerformanceRecord(series, benchTotal))
	}
	report.sort()
	return report, nil
}

// NewPerformanceRecord computes all metrics of a single instrument from its
// price series and the benchmark's total return.
func NewPerformanceRecord(series PriceSeries, benchTotal Metric) PerformanceRecord {
	total := totalReturn(series)
	volatility := annualizedVolatility(series.Returns())
	annualized := annualizedReturn(total, series.Len())
	_, latest := series.Latest()
	return PerformanceRecord{
		Ticker:           series.Ticker(),
		TotalReturn:      total,
		AnnualizedReturn: annualized,
		Volatility:       volatility,
		Sharpe:           sharpeRatio(annualized, volatility),
		MaxDrawdown:      maxDrawdown(series),
		LatestPrice:      AvailableMetric(latest),
		VsBenchmark:      total.Sub(benchTotal),
	}
}

// sort orders records by descending total return; records with an
// unavailable total return sort last, keeping their input order (stable).
func (r *PerformanceReport) sort() {
	sort.SliceStable(r.Records, func(i, j int) bool {
		vi, oki := r.Records[i].TotalReturn.Value()
		vj, okj := r.Records[j].TotalReturn.Value()
		if oki && okj {
			return vi > vj
		}
		return oki && !okj
	})
}

// Sectorize labels each record with its GICS sector from the given
// symbol-to-sector map. Unknown tickers keep an empty label.
func (r *PerformanceReport) Sectorize(sectors map[string]string) {
	for i := range r.Records {
		r.Records[i].Sector = sectors[r.Records[i].Ticker]
	}
}

// totalReturn computes last/first - 1 over the series.
func totalReturn(s PriceSeries) Metric {
	if s.Len() == 0 {
		return Unavailable
	}
	_, first := s.First()
	_, last := s.Latest()
	return AvailableMetric(last/first - 1)
}

// annualizedReturn compounds the total return to a 252-trading-day year
// using the count of observed trading days as a proxy for elapsed time.
// A single observation cannot be annualized.
func annualizedReturn(total Metric, observations int) Metric {
	value, ok := total.Value()
	if !ok || observations < 2 {
		return Unavailable
	}
	return AvailableMetric(math.Pow(1+value, tradingDays/float64(observations)) - 1)
}

// annualizedVolatility is the sample standard deviation of daily returns
// scaled by sqrt(252). At least two daily returns are required.
func annualizedVolatility(returns []float64) Metric {
	n := len(returns)
	if n < 2 {
		return Unavailable
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(n)
	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(n - 1)
	return AvailableMetric(math.Sqrt(variance) * math.Sqrt(tradingDays))
}

// sharpeRatio divides the annualized return by the annualized volatility,
// assuming a zero risk-free rate. Zero or unavailable volatility yields an
// unavailable ratio, never infinity.
func sharpeRatio(annualized, volatility Metric) Metric {
	ret, rok := annualized.Value()
	vol, vok := volatility.Value()
	if !rok || !vok || vol == 0 {
		return Unavailable
	}
	return AvailableMetric(ret / vol)
}

// maxDrawdown is the minimum over time of price/runningmax - 1. It is
// always <= 0 and equals 0 only for a non-decreasing series.
func maxDrawdown(s PriceSeries) Metric {
	if s.Len() == 0 {
		return Unavailable
	}
	peak := math.Inf(-1)
	worst := 0.0
	for _, price := range s.Values() {
		if price > peak {
			peak = price
		}
		if dd := price/peak - 1; dd < worst {
			worst = dd
		}
	}
	return AvailableMetric(worst)
}

// dedupe removes duplicate and blank tickers, preserving input order.
func dedupe(tickers []string) []string {
	seen := make(map[string]bool, len(tickers))
	uniq := make([]string, 0, len(tickers))
	for _, t := range tickers {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		uniq = append(uniq, t)
	}
	return uniq
}
