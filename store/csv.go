package store

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/etnz/stockwatch"
)

var priceHeader = []string{"date", "ticker", "open", "high", "low", "close", "adj_close", "volume"}

// AppendDailyPrices appends the bars of a ticker to the append-only
// daily_prices.csv under dir, writing the header only when the file is new.
func AppendDailyPrices(dir, ticker string, bars []stockwatch.Bar) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "daily_prices.csv")

	info, err := os.Stat(path)
	writeHeader := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(priceHeader); err != nil {
			return err
		}
	}
	for _, b := range bars {
		row := []string{
			b.Day.String(), ticker,
			cell(b.Open), cell(b.High), cell(b.Low),
			cell(b.Close), cell(b.AdjClose), cell(b.Volume),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WritePerformanceCSV writes a performance report as
// performance_<lookback>_<date>.csv under dir, and returns the file path.
// Unavailable metrics render as "-".
func WritePerformanceCSV(dir string, report *stockwatch.PerformanceReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("performance_%s_%s.csv", report.Lookback.Name(), report.Date))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"ticker", "sector", "total_return", "annualized_return", "volatility", "sharpe", "max_drawdown", "latest_price", "vs_" + report.Benchmark}
	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, r := range report.Records {
		row := []string{
			r.Ticker, r.Sector,
			r.TotalReturn.String(), r.AnnualizedReturn.String(),
			r.Volatility.String(), r.Sharpe.String(),
			r.MaxDrawdown.String(), r.LatestPrice.String(),
			r.VsBenchmark.String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return path, nil
}

// cell formats a bar field, empty when absent.
func cell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return fmt.Sprintf("%g", v)
}
