package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/stockwatch/chart"
	"github.com/etnz/stockwatch/date"
	"github.com/google/subcommands"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	lookback string
	out      string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render PNG price charts" }
func (*chartCmd) Usage() string {
	return `sw chart [-l <lookback>] [-o <dir>] [ticker...]

  Renders a PNG line chart of the daily prices of each ticker over the
  lookback window. Without arguments the watchlist instruments are charted.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lookback, "l", "1mo", "Lookback window to chart")
	f.StringVar(&c.out, "o", "", "Output directory (defaults to the data directory)")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	watchlist, err := loadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	lookback, err := date.ParseLookback(c.lookback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	provider, err := newProvider(watchlist)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	dir := c.out
	if dir == "" {
		dir = watchlist.DataDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	tickers := f.Args()
	if len(tickers) == 0 {
		tickers = watchlist.Tickers
	}

	for _, ticker := range tickers {
		series, err := provider.Daily(ticker, lookback)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", ticker, lookback.Name()))
		if err := chart.WritePNG(path, series, lookback); err != nil {
			fmt.Fprintf(os.Stderr, "Error charting %s: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s\n", path)
	}
	return subcommands.ExitSuccess
}
