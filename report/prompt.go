package report

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/finlens/finlens"
)

// this file builds the deterministic prompts handed to the generator.
// Given the same analysis results, the same prompt comes out, so the only
// non-determinism in a report is the model itself.

const metricsPreamble = "You are a financial analyst. Based on the following financial metrics, " +
	"generate a report that includes insights on the current state of the business " +
	"and actionable recommendations for improvement. \n\nMetrics:\n"

// MetricsPrompt formats derived P&L metrics into the report prompt: one
// "<name>: <value>" line per metric, values to 2 decimals, in entry order.
func MetricsPrompt(entries []finlens.MetricEntry) string {
	var b strings.Builder
	b.WriteString(metricsPreamble)
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %.2f\n", e.Name, e.Value)
	}
	return b.String()
}

// FinancePrompt builds the advisor prompt for a personal-finance summary.
func FinancePrompt(s *finlens.FinanceSummary) string {
	return "As a financial advisor, analyze this personal finance data and provide insights:\n" +
		fmt.Sprintf("Total Income: %s\n", usd(s.TotalIncome)) +
		fmt.Sprintf("Total Expenses: %s\n", usd(s.TotalExpenses)) +
		fmt.Sprintf("Net Savings: %s\n", usd(s.NetSavings)) +
		"Provide budget analysis, savings recommendations, and potential areas for improvement."
}

// PortfolioPrompt builds the advisor prompt for an investment-portfolio
// summary.
func PortfolioPrompt(s *finlens.PortfolioSummary) string {
	return "As a financial advisor, analyze this investment portfolio and provide insights:\n" +
		fmt.Sprintf("Total Investment: %s\n", usd(s.TotalInvestment)) +
		fmt.Sprintf("Current Value: %s\n", usd(s.CurrentValue)) +
		fmt.Sprintf("Total Gain/Loss: %s\n", usd(s.TotalGainLoss)) +
		fmt.Sprintf("Average Return: %.2f%%\n", s.AvgAnnualReturn) +
		"Provide an assessment of diversification, performance, and potential rebalancing actions."
}

// QuestionPrompt builds the prompt for a free-text question about an
// analysed data set.
func QuestionPrompt(kind finlens.Kind, question string) string {
	return fmt.Sprintf("Based on the %s data provided, please answer this question:\n%s\n"+
		"Provide a detailed, analytical response.", kind, question)
}

// usd formats an amount as US dollars with thousands separators.
func usd(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}
