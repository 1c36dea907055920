package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/finlens/finlens"
	"github.com/finlens/finlens/renderer"
	"github.com/finlens/finlens/report"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// askCmd holds the flags for the 'ask' subcommand.
type askCmd struct {
	file  string
	model string
}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "ask questions about your financial data" }
func (*askCmd) Usage() string {
	return `flens ask -f <file.csv> [question...]

  Starts an interactive session to ask free-text questions about the
  analysed data. A question given on the command line is asked first; the
  session then reads follow-up questions until 'bye' or Ctrl+D.
  Requires a Gemini API key (GEMINI_API_KEY, also read from .env).
`
}

func (c *askCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Financial CSV file.")
	f.StringVar(&c.model, "model", "", "Gemini model to use (defaults to a flash model).")
}

func (c *askCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := loadTable(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading CSV: %v\n", err)
		return subcommands.ExitFailure
	}

	kind, summary, err := dataSummary(table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing Gemini's client: %v\n", err)
		return subcommands.ExitFailure
	}

	dataContext := fmt.Sprintf("The user is analysing %s data. The analysis results are:\n%s\n"+
		"Answer questions about this data with detailed, analytical responses.", kind, summary)

	session := report.NewSession(os.Stdout, os.Stdin)
	session.Model = c.model
	if err := session.Start(ctx, client, dataContext); err != nil {
		fmt.Fprintf(os.Stderr, "Error starting session: %v\n", err)
		return subcommands.ExitFailure
	}

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := session.Run(ctx, prompts...); err != nil {
		fmt.Fprintf(os.Stderr, "Session failed: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// dataSummary analyses the table per its detected kind and returns the
// compact summary used as session context.
func dataSummary(table *finlens.Table) (finlens.Kind, string, error) {
	kind, err := finlens.DetectKind(table)
	if err != nil {
		return kind, "", err
	}

	switch kind {
	case finlens.ProfitLoss:
		metrics, err := finlens.CalculateMetrics(finlens.PnLRowsFromTable(table))
		if err != nil {
			return kind, "", err
		}
		return kind, renderer.PnLDataSummary(metrics), nil

	case finlens.PersonalFinance:
		txs, dropped, err := finlens.ParseTransactions(table)
		if err != nil {
			return kind, "", err
		}
		warnDropped(dropped)
		return kind, renderer.FinanceDataSummary(finlens.AnalyzePersonalFinance(txs)), nil

	default: // finlens.Portfolio
		holdings, dropped, err := finlens.ParseHoldings(table)
		if err != nil {
			return kind, "", err
		}
		warnDropped(dropped)
		return kind, renderer.PortfolioDataSummary(finlens.AnalyzePortfolio(holdings)), nil
	}
}
