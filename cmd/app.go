// Package cmd implements the CLI application to watch a list of stocks.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/stockwatch"
	"github.com/etnz/stockwatch/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&perfCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&valCmd{}, "reports")
	c.Register(&assistCmd{}, "reports")

	c.Register(&fetchCmd{}, "data")
	c.Register(&sp500Cmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var watchlistFile = flag.String("watchlist", "watchlist.yaml", "Path to the watchlist configuration file (YAML)")

// loadWatchlist is the central function to load the app configuration.
func loadWatchlist() (stockwatch.Watchlist, error) {
	return stockwatch.LoadWatchlist(*watchlistFile)
}

// newProvider builds the market data provider paced per the watchlist.
func newProvider(w stockwatch.Watchlist) (*yahoo.Client, error) {
	interval, err := w.PacingInterval()
	if err != nil {
		return nil, fmt.Errorf("cannot configure provider: %w", err)
	}
	return yahoo.New(interval), nil
}
