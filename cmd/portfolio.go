package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finlens/finlens"
	"github.com/finlens/finlens/renderer"
	"github.com/google/subcommands"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct {
	file   string
	update bool
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "summarize an investment portfolio" }
func (*portfolioCmd) Usage() string {
	return `flens portfolio -f <file.csv> [-update]

  Summarizes an investment portfolio: total investment, current value,
  gain/loss and return per holding, and the distribution by asset type.
  With -update, stock holdings' current values are refreshed from the quote
  endpoint first; other asset types and holdings that cannot be quoted keep
  their value from the file.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Investment portfolio CSV file.")
	f.BoolVar(&c.update, "update", false, "Refresh current values from the quote endpoint.")
}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadTable(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	holdings, dropped, err := finlens.ParseHoldings(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	warnDropped(dropped)

	if c.update {
		updated := finlens.NewQuoter().UpdateHoldings(holdings)
		fmt.Fprintf(os.Stderr, "Updated current value for %d of %d holdings.\n", updated, len(holdings))
	}

	printMarkdown(renderer.PortfolioMarkdown(finlens.AnalyzePortfolio(holdings)))
	return subcommands.ExitSuccess
}
