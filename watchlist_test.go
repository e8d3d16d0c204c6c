package stockwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadWatchlistMissingFile(t *testing.T) {
	w, err := LoadWatchlist(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadWatchlist: %v", err)
	}
	def := DefaultWatchlist()
	if w.Benchmark != def.Benchmark || len(w.Tickers) != len(def.Tickers) {
		t.Errorf("missing file did not fall back to the default watchlist: %+v", w)
	}
}

func TestLoadWatchlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.yaml")
	content := `
tickers: [IBM, ORCL]
benchmark: QQQ
pacing: 2s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := LoadWatchlist(path)
	if err != nil {
		t.Fatalf("LoadWatchlist: %v", err)
	}
	if len(w.Tickers) != 2 || w.Tickers[0] != "IBM" {
		t.Errorf("tickers = %v, want [IBM ORCL]", w.Tickers)
	}
	if w.Benchmark != "QQQ" {
		t.Errorf("benchmark = %s, want QQQ", w.Benchmark)
	}
	// Unset fields fall back to defaults.
	if w.DataDir != DefaultWatchlist().DataDir {
		t.Errorf("data dir = %s, want default", w.DataDir)
	}
	d, err := w.PacingInterval()
	if err != nil || d != 2*time.Second {
		t.Errorf("pacing = %v (%v), want 2s", d, err)
	}
}

func TestLoadWatchlistInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"Bad YAML", "tickers: [unterminated"},
		{"Bad pacing", "pacing: every-so-often"},
		{"Bad lookback", "lookbacks: [2fortnights]"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "watchlist.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadWatchlist(path); err == nil {
				t.Error("LoadWatchlist succeeded, want error")
			}
		})
	}
}

func TestWatchlistAll(t *testing.T) {
	w := Watchlist{Tickers: []string{"AAPL", "SPY"}, Benchmarks: []string{"SPY", "QQQ"}}
	got := w.All()
	want := []string{"AAPL", "SPY", "QQQ"}
	if len(got) != len(want) {
		t.Fatalf("All = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
