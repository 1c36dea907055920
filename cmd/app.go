// Package cmd implements the CLI application to analyse financial CSV files.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/finlens/finlens"
	"github.com/google/subcommands"
)

// Commands lists the subcommands; a main package registers each of them on
// a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&pnlCmd{},
	&financeCmd{},
	&portfolioCmd{},
	&reportCmd{},
	&askCmd{},
	&convertCmd{},
	&topicCmd{},
}

// loadTable reads the CSV file given to the -f flag.
func loadTable(path string) (*finlens.Table, error) {
	if path == "" {
		return nil, fmt.Errorf("missing CSV file, use -f <file.csv>")
	}
	return finlens.ReadCSVFile(path)
}

// warnDropped tells the user about rows excluded from the analysis.
func warnDropped(dropped int) {
	if dropped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d row(s) with invalid data were excluded.\n", dropped)
	}
}

// printMarkdown renders markdown for the terminal. If styling fails the
// raw markdown is still printed.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
