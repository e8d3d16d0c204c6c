package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockwatch"
	"github.com/etnz/stockwatch/date"
	"github.com/etnz/stockwatch/renderer"
	"github.com/etnz/stockwatch/store"
	"github.com/google/subcommands"
)

// perfCmd holds the flags for the 'perf' subcommand.
type perfCmd struct {
	lookback  string
	benchmark string
	csv       bool
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "display a performance report of the watchlist" }
func (*perfCmd) Usage() string {
	return `sw perf [-l <lookback>] [-b <benchmark>] [-csv] [ticker...]

  Computes total and annualized return, volatility, Sharpe ratio, max
  drawdown and benchmark-relative return for every instrument, over the
  lookback window. Without arguments the watchlist instruments are used.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lookback, "l", "1mo", "Lookback window (5d, 1mo, 3mo, 6mo, ytd, 1y, 5y, 10y, max)")
	f.StringVar(&c.benchmark, "b", "", "Benchmark ticker (defaults to the watchlist benchmark)")
	f.BoolVar(&c.csv, "csv", false, "Also write the report as a CSV file in the data directory")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	benchmark := c.benchmark
	if benchmark == "" {
		benchmark = watchlist.Benchmark
	}
	tickers := f.Args()
	if len(tickers) == 0 {
		tickers = watchlist.Tickers
	}

	provider, err := newProvider(watchlist)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := stockwatch.Summarize(provider, tickers, lookback, benchmark)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PerformanceMarkdown(report))

	if c.csv {
		path, err := store.WritePerformanceCSV(watchlist.DataDir, report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", path)
	}
	return subcommands.ExitSuccess
}
