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
	"github.com/etnz/stockwatch/store"
	"github.com/google/subcommands"
)

// valCmd holds the flags for the 'val' subcommand.
type valCmd struct {
	persist bool
}

func (*valCmd) Name() string     { return "val" }
func (*valCmd) Synopsis() string { return "display a valuation snapshot of the watchlist" }
func (*valCmd) Usage() string {
	return `sw val [-save] [ticker...]

  Fetches the fundamentals of every instrument and displays the derived
  valuation metrics: market cap, P/E, P/B, debt/equity and dividend yield.
  Without arguments the watchlist instruments are used.
`
}

func (c *valCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.persist, "save", false, "Also persist the snapshot into the SQLite database")
}

func (c *valCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tickers := f.Args()
	if len(tickers) == 0 {
		tickers = watchlist.Tickers
	}

	var valuations []stockwatch.Valuation
	for _, ticker := range tickers {
		fundamentals, err := provider.Fundamentals(ticker)
		if err != nil {
			log.Printf("warning, cannot fetch fundamentals of %s: %v", ticker, err)
			fundamentals = stockwatch.Fundamentals{Ticker: ticker}
		}
		latest := stockwatch.Unavailable
		if series, err := provider.Daily(ticker, date.FiveDay); err == nil {
			_, price := series.Latest()
			latest = stockwatch.AvailableMetric(price)
		}
		valuations = append(valuations, stockwatch.NewValuation(fundamentals, latest))
	}

	printMarkdown(renderer.ValuationMarkdown(valuations))

	if c.persist {
		db, err := store.Open(watchlist.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer db.Close()
		today := date.Today()
		for _, v := range valuations {
			if err := db.SaveValuation(today, v); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		fmt.Fprintf(os.Stderr, "Snapshot of %d instruments saved to %s\n", len(valuations), watchlist.DBPath)
	}
	return subcommands.ExitSuccess
}
