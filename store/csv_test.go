package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/stockwatch"
	"github.com/etnz/stockwatch/date"
)

func TestAppendDailyPrices(t *testing.T) {
	dir := t.TempDir()
	d := date.New(2025, 8, 22)

	if err := AppendDailyPrices(dir, "AAPL", []stockwatch.Bar{bar(d, 230.5)}); err != nil {
		t.Fatalf("AppendDailyPrices: %v", err)
	}
	if err := AppendDailyPrices(dir, "MSFT", []stockwatch.Bar{bar(d, 415.0)}); err != nil {
		t.Fatalf("AppendDailyPrices: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "daily_prices.csv"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), content)
	}
	// header exactly once
	if lines[0] != strings.Join(priceHeader, ",") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2025-08-22,AAPL,") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2025-08-22,MSFT,") {
		t.Errorf("row 2 = %q", lines[2])
	}
	// absent fields are empty cells, not zeros
	if strings.Contains(lines[1], "NaN") {
		t.Errorf("row 1 leaks NaN: %q", lines[1])
	}
}

func TestWritePerformanceCSV(t *testing.T) {
	dir := t.TempDir()
	report := &stockwatch.PerformanceReport{
		Date:      date.New(2025, 8, 22),
		Lookback:  date.OneMonth,
		Benchmark: "SPY",
		Records: []stockwatch.PerformanceRecord{
			{
				Ticker:      "AAPL",
				Sector:      "Information Technology",
				TotalReturn: stockwatch.AvailableMetric(0.0512),
				LatestPrice: stockwatch.AvailableMetric(230.5),
				VsBenchmark: stockwatch.AvailableMetric(0.0112),
			},
			{Ticker: "BAD"},
		},
	}

	path, err := WritePerformanceCSV(dir, report)
	if err != nil {
		t.Fatalf("WritePerformanceCSV: %v", err)
	}
	if want := filepath.Join(dir, "performance_1month_2025-08-22.csv"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), content)
	}
	if !strings.Contains(lines[0], "vs_SPY") {
		t.Errorf("header = %q, want vs_SPY column", lines[0])
	}
	if !strings.Contains(lines[1], "0.0512") {
		t.Errorf("row 1 = %q, want total return 0.0512", lines[1])
	}
	// the failed instrument renders every metric as "-"
	if !strings.HasPrefix(lines[2], "BAD,,-,-,-,-,-,-,-") {
		t.Errorf("row 2 = %q", lines[2])
	}
}
