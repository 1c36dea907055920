package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/finlens/finlens/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// The Gemini API key may live in a .env file; a missing file is fine.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands and their file
// flags. It is a no-op outside of a shell-completion invocation.
func completion() {
	csvCmd := &complete.Command{
		Flags: map[string]complete.Predictor{"f": predict.Files("*.csv")},
	}
	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"pnl":       csvCmd,
			"finance":   csvCmd,
			"portfolio": csvCmd,
			"report":    csvCmd,
			"ask":       csvCmd,
			"convert":   csvCmd,
			"topic":     {},
		},
	}
	root.Complete("flens")
}
