package stockwatch

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/etnz/stockwatch/date"
	"gopkg.in/yaml.v3"
)

// Watchlist is the YAML configuration of the toolkit: the instruments to
// track, the benchmark ETFs, the lookback windows to report on, and where
// data lands on disk.
type Watchlist struct {
	Tickers    []string `yaml:"tickers"`
	Benchmarks []string `yaml:"benchmarks"`
	Benchmark  string   `yaml:"benchmark"`
	Lookbacks  []string `yaml:"lookbacks"`
	DataDir    string   `yaml:"data_dir"`
	DBPath     string   `yaml:"db_path"`
	Pacing     string   `yaml:"pacing"` // minimum delay between provider requests, e.g. "500ms"
}

// DefaultWatchlist returns the built-in watchlist used when no configuration
// file exists.
func DefaultWatchlist() Watchlist {
	return Watchlist{
		Tickers:    []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA", "META"},
		Benchmarks: []string{"SPY", "VOO", "QQQ"},
		Benchmark:  "SPY",
		Lookbacks:  []string{"5d", "1mo", "3mo", "ytd", "1y"},
		DataDir:    "stock_data",
		DBPath:     "stock_data/finance.db",
		Pacing:     "500ms",
	}
}

// LoadWatchlist reads a watchlist from a YAML file. A missing file is not an
// error: the default watchlist is returned instead. Fields left empty in the
// file fall back to their defaults.
func LoadWatchlist(path string) (Watchlist, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, watchlist %q does not exist, using the default watchlist instead", path)
		return DefaultWatchlist(), nil
	}
	if err != nil {
		return Watchlist{}, fmt.Errorf("read watchlist %q: %w", path, err)
	}

	w := Watchlist{}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Watchlist{}, fmt.Errorf("parse watchlist %q: %w", path, err)
	}

	def := DefaultWatchlist()
	if len(w.Tickers) == 0 {
		w.Tickers = def.Tickers
	}
	if len(w.Benchmarks) == 0 {
		w.Benchmarks = def.Benchmarks
	}
	if w.Benchmark == "" {
		w.Benchmark = def.Benchmark
	}
	if len(w.Lookbacks) == 0 {
		w.Lookbacks = def.Lookbacks
	}
	if w.DataDir == "" {
		w.DataDir = def.DataDir
	}
	if w.DBPath == "" {
		w.DBPath = def.DBPath
	}
	if w.Pacing == "" {
		w.Pacing = def.Pacing
	}
	if _, err := w.PacingInterval(); err != nil {
		return Watchlist{}, fmt.Errorf("invalid watchlist %q: %w", path, err)
	}
	if _, err := w.ParsedLookbacks(); err != nil {
		return Watchlist{}, fmt.Errorf("invalid watchlist %q: %w", path, err)
	}
	return w, nil
}

// All returns tickers and benchmarks combined, without duplicates.
func (w Watchlist) All() []string {
	return dedupe(append(append([]string{}, w.Tickers...), w.Benchmarks...))
}

// PacingInterval parses the configured minimum delay between provider
// requests.
func (w Watchlist) PacingInterval() (time.Duration, error) {
	d, err := time.ParseDuration(w.Pacing)
	if err != nil {
		return 0, fmt.Errorf("invalid pacing %q: %w", w.Pacing, err)
	}
	return d, nil
}

// ParsedLookbacks parses the configured lookback windows.
func (w Watchlist) ParsedLookbacks() ([]date.Lookback, error) {
	lookbacks := make([]date.Lookback, 0, len(w.Lookbacks))
	for _, s := range w.Lookbacks {
		lb, err := date.ParseLookback(s)
		if err != nil {
			return nil, err
		}
		lookbacks = append(lookbacks, lb)
	}
	return lookbacks, nil
}
