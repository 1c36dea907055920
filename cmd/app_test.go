package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/finlens/finlens"
	"github.com/google/subcommands"
)

// writeCSV writes a temp CSV file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTableRequiresFile(t *testing.T) {
	if _, err := loadTable(""); err == nil {
		t.Fatal("loadTable(\"\") should fail with a usage hint")
	}
}

// The pnl subcommand must refuse files without the P&L columns instead of
// rendering a table of zeros.
func TestPnLRejectsWrongFormat(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"personal finance file", "Category,Amount,Date\nSalary,5000,2024-03-01\n"},
		{"unknown columns", "foo,bar\n1,2\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := &pnlCmd{file: writeCSV(t, tc.content)}
			f := flag.NewFlagSet("pnl", flag.ContinueOnError)
			if got := c.Execute(context.Background(), f); got != subcommands.ExitFailure {
				t.Errorf("Execute() = %v, want ExitFailure", got)
			}
		})
	}
}

func TestPnLAcceptsProfitLossFile(t *testing.T) {
	c := &pnlCmd{file: writeCSV(t, "metric,amount_month_usd\nTotal Revenue,100000\nGross Profit,40000\n")}
	f := flag.NewFlagSet("pnl", flag.ContinueOnError)
	if got := c.Execute(context.Background(), f); got != subcommands.ExitSuccess {
		t.Errorf("Execute() = %v, want ExitSuccess", got)
	}
}

func TestBuildPromptProfitLoss(t *testing.T) {
	path := writeCSV(t, "metric,amount_month_usd\nTotal Revenue,100000\nGross Profit,40000\n")
	table, err := loadTable(path)
	if err != nil {
		t.Fatalf("loadTable() failed: %v", err)
	}

	prompt, err := buildPrompt(table)
	if err != nil {
		t.Fatalf("buildPrompt() failed: %v", err)
	}
	if !strings.Contains(prompt, "Gross Profit Margin: 40.00") {
		t.Errorf("prompt missing derived metric:\n%s", prompt)
	}
}

func TestBuildPromptUnknownFormat(t *testing.T) {
	path := writeCSV(t, "foo,bar\n1,2\n")
	table, err := loadTable(path)
	if err != nil {
		t.Fatalf("loadTable() failed: %v", err)
	}
	if _, err := buildPrompt(table); err == nil {
		t.Fatal("buildPrompt() on an unknown format should fail")
	}
}

func TestDataSummaryDetectsKind(t *testing.T) {
	path := writeCSV(t, "Category,Amount,Date\nSalary,5000,2024-03-01\nRent,-1800,2024-03-02\n")
	table, err := loadTable(path)
	if err != nil {
		t.Fatalf("loadTable() failed: %v", err)
	}

	kind, summary, err := dataSummary(table)
	if err != nil {
		t.Fatalf("dataSummary() failed: %v", err)
	}
	if kind != finlens.PersonalFinance {
		t.Errorf("kind = %v, want %v", kind, finlens.PersonalFinance)
	}
	if !strings.Contains(summary, "Net Savings: $3,200.00") {
		t.Errorf("summary missing net savings:\n%s", summary)
	}
}
