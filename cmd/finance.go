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

// financeCmd holds the flags for the 'finance' subcommand.
type financeCmd struct {
	file string
}

func (*financeCmd) Name() string     { return "finance" }
func (*financeCmd) Synopsis() string { return "summarize a personal-finance ledger" }
func (*financeCmd) Usage() string {
	return `flens finance -f <file.csv>

  Summarizes a personal-finance ledger: total income and expenses, net
  savings, cash flow by category and the balance trend over time. Rows with
  invalid dates or amounts are excluded with a warning.
`
}

func (c *financeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Personal finance CSV file.")
}

func (c *financeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadTable(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	txs, dropped, err := finlens.ParseTransactions(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	warnDropped(dropped)

	printMarkdown(renderer.FinanceMarkdown(finlens.AnalyzePersonalFinance(txs)))
	return subcommands.ExitSuccess
}
