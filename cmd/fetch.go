package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/stockwatch/date"
	"github.com/etnz/stockwatch/store"
	"github.com/google/subcommands"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	lookback string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download and persist price history" }
func (*fetchCmd) Usage() string {
	return `sw fetch [-l <lookback>] [ticker...]

  Downloads the daily price history over the lookback window and persists
  it into the SQLite database. Only rows newer than the stored history are
  written. Without arguments the watchlist instruments are fetched.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lookback, "l", "1y", "Lookback window to download")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	tickers := f.Args()
	if len(tickers) == 0 {
		tickers = watchlist.All()
	}

	db, err := store.Open(watchlist.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	for _, ticker := range tickers {
		bars, err := provider.History(ticker, lookback)
		if err != nil {
			log.Printf("warning, cannot fetch %s: %v", ticker, err)
			continue
		}
		n, err := db.SavePrices(ticker, bars)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error storing %s: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s: %d new rows\n", ticker, n)
	}
	return subcommands.ExitSuccess
}
