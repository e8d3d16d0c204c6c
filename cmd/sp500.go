package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockwatch/sp500"
	"github.com/google/subcommands"
)

// sp500Cmd holds the flags for the 'sp500' subcommand.
type sp500Cmd struct {
	sector string
}

func (*sp500Cmd) Name() string     { return "sp500" }
func (*sp500Cmd) Synopsis() string { return "list the S&P 500 constituents" }
func (*sp500Cmd) Usage() string {
	return `sw sp500 [-sector <gics sector>]

  Lists the current S&P 500 constituents with their GICS sector. Symbols
  are normalized for the market data provider (BRK.B becomes BRK-B).
`
}

func (c *sp500Cmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sector, "sector", "", "Only list constituents of this GICS sector")
}

func (c *sp500Cmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	constituents, err := sp500.Fetch(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	n := 0
	for _, con := range constituents {
		if c.sector != "" && con.Sector != c.sector {
			continue
		}
		fmt.Printf("%-8s %-40s %s\n", con.Symbol, con.Security, con.Sector)
		n++
	}
	fmt.Fprintf(os.Stderr, "%d constituents\n", n)
	return subcommands.ExitSuccess
}
