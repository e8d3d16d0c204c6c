package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/stockwatch"
	"github.com/etnz/stockwatch/date"
	"github.com/etnz/stockwatch/renderer"
	"github.com/etnz/stockwatch/sp500"
	"github.com/etnz/stockwatch/store"
	"github.com/google/subcommands"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	index bool
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "run the daily workflow and display the market summary" }
func (*dailyCmd) Usage() string {
	return `sw daily [-index]

  Runs the full daily workflow: downloads latest prices, appends them to
  daily_prices.csv, persists them in the SQLite database, writes one
  performance CSV per configured lookback, and prints the daily market
  summary (breadth, sectors, top and bottom performers).

  With -index the universe is the S&P 500 constituents; otherwise the
  watchlist instruments are used. When the constituents page cannot be
  fetched the workflow falls back to the watchlist.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.index, "index", false, "Track the S&P 500 constituents instead of the watchlist")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	watchlist, err := loadWatchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	provider, err := newProvider(watchlist)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	tickers := watchlist.All()
	var sectors map[string]string
	if c.index {
		constituents, err := sp500.Fetch(nil)
		if err != nil {
			log.Printf("warning, cannot fetch the S&P 500 constituents, falling back to the watchlist: %v", err)
		} else {
			tickers = nil
			for _, con := range constituents {
				tickers = append(tickers, con.Symbol)
			}
			tickers = append(tickers, watchlist.Benchmarks...)
			sectors = sp500.Sectors(constituents)
		}
	}

	db, err := store.Open(watchlist.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	// Persist the latest bars first, so a metrics failure never loses data.
	for _, ticker := range tickers {
		bars, err := provider.History(ticker, date.FiveDay)
		if err != nil {
			log.Printf("warning, cannot fetch %s: %v", ticker, err)
			continue
		}
		n, err := db.SavePrices(ticker, bars)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error storing %s: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		if n > 0 {
			if err := store.AppendDailyPrices(watchlist.DataDir, ticker, bars[len(bars)-n:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error appending %s to daily_prices.csv: %v\n", ticker, err)
				return subcommands.ExitFailure
			}
		}
	}

	lookbacks, err := watchlist.ParsedLookbacks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var daily *stockwatch.DailyReport
	for _, lookback := range lookbacks {
		report, err := stockwatch.Summarize(provider, tickers, lookback, watchlist.Benchmark)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if sectors != nil {
			report.Sectorize(sectors)
		}
		if _, err := store.WritePerformanceCSV(watchlist.DataDir, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		if lookback == date.FiveDay || daily == nil {
			daily = stockwatch.NewDailyReport(report)
		}
	}

	printMarkdown(renderer.DailyMarkdown(daily))
	return subcommands.ExitSuccess
}
