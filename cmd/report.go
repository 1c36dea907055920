package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finlens/finlens"
	"github.com/finlens/finlens/report"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	file  string
	model string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate an AI narrative report from a CSV file" }
func (*reportCmd) Usage() string {
	return `flens report -f <file.csv> [-model <model>]

  Detects the kind of financial data in the file, analyses it, and asks the
  AI to generate a narrative report with insights and recommendations.
  Requires a Gemini API key (GEMINI_API_KEY, also read from .env).
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Financial CSV file.")
	f.StringVar(&c.model, "model", "", "Gemini model to use (defaults to a flash model).")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadTable(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	prompt, err := buildPrompt(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	gen := report.NewGenerator(client)
	gen.Model = c.model
	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "The report could not be generated: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(text)
	return subcommands.ExitSuccess
}

// buildPrompt analyses the table per its detected kind and returns the
// matching narrative prompt.
func buildPrompt(table *finlens.Table) (string, error) {
	kind, err := finlens.DetectKind(table)
	if err != nil {
		return "", err
	}

	switch kind {
	case finlens.ProfitLoss:
		metrics, err := finlens.CalculateMetrics(finlens.PnLRowsFromTable(table))
		if err != nil {
			return "", err
		}
		return report.MetricsPrompt(metrics.Entries()), nil

	case finlens.PersonalFinance:
		txs, dropped, err := finlens.ParseTransactions(table)
		if err != nil {
			return "", err
		}
		warnDropped(dropped)
		return report.FinancePrompt(finlens.AnalyzePersonalFinance(txs)), nil

	default: // finlens.Portfolio
		holdings, dropped, err := finlens.ParseHoldings(table)
		if err != nil {
			return "", err
		}
		warnDropped(dropped)
		return report.PortfolioPrompt(finlens.AnalyzePortfolio(holdings)), nil
	}
}
