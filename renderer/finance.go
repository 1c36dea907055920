package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/finlens/finlens"
	md "github.com/nao1215/markdown"
)

// FinanceMarkdown renders a personal-finance summary as a markdown report:
// headline figures, income-vs-expenses distribution, cash flow by category
// and the balance trend over time.
func FinanceMarkdown(s *finlens.FinanceSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Personal Finance Summary")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Total Income", usd(s.TotalIncome)},
		Rows: [][]string{
			{"Total Expenses", usd(s.TotalExpenses)},
			{"Net Savings", signedUSD(s.NetSavings)},
		},
	})

	doc.H2("Income vs Expenses Distribution")
	whole := s.TotalIncome + s.TotalExpenses
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Type", "Amount", "Share", "Distribution"},
		Rows: [][]string{
			{"Income", usd(s.TotalIncome), percent(s.TotalIncome, whole), bar(s.TotalIncome, whole)},
			{"Expenses", usd(s.TotalExpenses), percent(s.TotalExpenses, whole), bar(s.TotalExpenses, whole)},
		},
	})

	flows := s.CashFlowByCategory()
	if len(flows) > 0 {
		doc.H2("Cash Flow by Category")
		maxAbs := 0.0
		for _, f := range flows {
			maxAbs = math.Max(maxAbs, math.Abs(f.Total))
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Category", "Net Flow", ""},
			Rows:      [][]string{},
		}
		for _, f := range flows {
			table.Rows = append(table.Rows, []string{f.Category, signedUSD(f.Total), bar(math.Abs(f.Total), maxAbs)})
		}
		doc.Table(table)
	}

	if len(s.Balance) > 0 {
		doc.H2("Balance Trend Over Time")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Cumulative Balance"},
			Rows:      [][]string{},
		}
		for _, p := range s.Balance {
			table.Rows = append(table.Rows, []string{p.Date.Format("2006-01-02"), signedUSD(p.Balance)})
		}
		doc.Table(table)
	}

	return doc.String()
}

// FinanceDataSummary is the compact textual summary of a finance analysis
// handed to the Q&A session as grounding context.
func FinanceDataSummary(s *finlens.FinanceSummary) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Total Income: %s\n", usd(s.TotalIncome))
	fmt.Fprintf(&buf, "Total Expenses: %s\n", usd(s.TotalExpenses))
	fmt.Fprintf(&buf, "Net Savings: %s\n", usd(s.NetSavings))
	for _, f := range s.Categories {
		fmt.Fprintf(&buf, "%s (%s): %s\n", f.Category, f.Type, signedUSD(f.Total))
	}
	return buf.String()
}
