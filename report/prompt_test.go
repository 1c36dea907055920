package report

import (
	"strings"
	"testing"

	"github.com/finlens/finlens"
)

func TestMetricsPrompt(t *testing.T) {
	m := finlens.PnLMetrics{GrossProfitMargin: 40, OperatingProfitMargin: 30.5}
	prompt := MetricsPrompt(m.Entries())

	if !strings.HasPrefix(prompt, "You are a financial analyst.") {
		t.Errorf("prompt missing analyst preamble:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Gross Profit Margin: 40.00\n") {
		t.Errorf("prompt missing 2-decimal metric line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Operating Profit Margin: 30.50\n") {
		t.Errorf("prompt missing 2-decimal metric line:\n%s", prompt)
	}

	// one line per derived metric, in entry order
	gpm := strings.Index(prompt, "Gross Profit Margin")
	opm := strings.Index(prompt, "Operating Profit Margin")
	if gpm == -1 || opm == -1 || gpm > opm {
		t.Errorf("metric lines out of order:\n%s", prompt)
	}
}

// Given the same metrics, the prompt must be byte-identical: the model is
// the only source of non-determinism in a report.
func TestMetricsPromptDeterministic(t *testing.T) {
	m := finlens.PnLMetrics{GrossProfitMargin: 40, InterestCoverageRatio: 12.345}
	if MetricsPrompt(m.Entries()) != MetricsPrompt(m.Entries()) {
		t.Error("MetricsPrompt is not deterministic")
	}
}

func TestFinancePrompt(t *testing.T) {
	s := &finlens.FinanceSummary{TotalIncome: 6200, TotalExpenses: 2050.50, NetSavings: 4149.50}
	prompt := FinancePrompt(s)

	for _, want := range []string{
		"Total Income: $6,200.00",
		"Total Expenses: $2,050.50",
		"Net Savings: $4,149.50",
		"savings recommendations",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestPortfolioPrompt(t *testing.T) {
	s := &finlens.PortfolioSummary{TotalInvestment: 550, CurrentValue: 612, TotalGainLoss: 62, AvgAnnualReturn: 11}
	prompt := PortfolioPrompt(s)

	for _, want := range []string{
		"Total Investment: $550.00",
		"Current Value: $612.00",
		"Average Return: 11.00%",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestQuestionPrompt(t *testing.T) {
	prompt := QuestionPrompt(finlens.PersonalFinance, "How can I save more?")

	if !strings.Contains(prompt, "Based on the Personal Finance data provided") {
		t.Errorf("prompt missing kind context:\n%s", prompt)
	}
	if !strings.Contains(prompt, "How can I save more?") {
		t.Errorf("prompt missing the question:\n%s", prompt)
	}
}
