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

// pnlCmd holds the flags for the 'pnl' subcommand.
type pnlCmd struct {
	file string
}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "compute derived metrics from a P&L statement" }
func (*pnlCmd) Usage() string {
	return `flens pnl -f <file.csv>

  Computes the derived financial metrics (margins, ratios, expense
  percentages) from a profit-and-loss statement and displays them as a
  table. See 'flens topic metrics' for the formulas.
`
}

func (c *pnlCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "P&L statement CSV file.")
}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadTable(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	kind, err := finlens.DetectKind(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if kind != finlens.ProfitLoss {
		fmt.Fprintf(os.Stderr, "Error: %s holds %s data, not a P&L statement\n", c.file, kind)
		return subcommands.ExitFailure
	}

	set := finlens.FoldMetrics(finlens.PnLRowsFromTable(table))
	metrics, err := set.Calculate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating metrics: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PnLMarkdown(metrics, set.Unparsed))
	return subcommands.ExitSuccess
}
