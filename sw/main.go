package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockwatch/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: a no-op outside of a completion request.
	completion().Complete("sw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	lookbacks := predict.Set{"5d", "1mo", "3mo", "6mo", "ytd", "1y", "5y", "10y", "max"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"watchlist": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"perf":   {Flags: map[string]complete.Predictor{"l": lookbacks, "b": predict.Nothing, "csv": predict.Nothing}},
			"daily":  {Flags: map[string]complete.Predictor{"index": predict.Nothing}},
			"fetch":  {Flags: map[string]complete.Predictor{"l": lookbacks}},
			"chart":  {Flags: map[string]complete.Predictor{"l": lookbacks, "o": predict.Dirs("*")}},
			"sp500":  {Flags: map[string]complete.Predictor{"sector": predict.Nothing}},
			"val":    {Flags: map[string]complete.Predictor{"save": predict.Nothing}},
			"assist": {Flags: map[string]complete.Predictor{"l": lookbacks}},
			"topic":  {Args: predict.Set{"readme", "metrics", "lookbacks", "watchlist"}},
		},
	}
}
