package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockwatch"
	"github.com/etnz/stockwatch/agent"
	"github.com/etnz/stockwatch/date"
	"github.com/etnz/stockwatch/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	lookback string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive analyst session about today's report"
}
func (*assistCmd) Usage() string {
	return `sw assist [-l <lookback>]

  Computes the daily market summary and starts an interactive session with
  an AI analyst grounded by Google Search, scoped to that summary.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lookback, "l", "5d", "Lookback window for the report the analyst comments")
}

func (c *assistCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := stockwatch.Summarize(provider, watchlist.Tickers, lookback, watchlist.Benchmark)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	md := renderer.DailyMarkdown(stockwatch.NewDailyReport(report))
	printMarkdown(md)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	if err := agent.Run(ctx, client, md, os.Stdout, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
