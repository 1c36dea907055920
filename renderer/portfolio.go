package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/finlens/finlens"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders an investment-portfolio summary as a markdown
// report: headline totals, current value by asset type, annual returns and
// gain/loss per asset.
func PortfolioMarkdown(s *finlens.PortfolioSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Portfolio Summary")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Total Investment", usd(s.TotalInvestment)},
		Rows: [][]string{
			{"Current Value", usd(s.CurrentValue)},
			{"Total Gain/Loss", signedUSD(s.TotalGainLoss)},
			{"Average Return", fmt.Sprintf("%.2f%%", s.AvgAnnualReturn)},
		},
	})

	if len(s.Distribution) > 0 {
		doc.H2("Portfolio Distribution by Asset Type")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
			Header:    []string{"Type", "Current Value", "Share", "Distribution"},
			Rows:      [][]string{},
		}
		for _, tv := range s.Distribution {
			table.Rows = append(table.Rows, []string{
				tv.Type,
				usd(tv.Value),
				percent(tv.Value, s.CurrentValue),
				bar(tv.Value, s.CurrentValue),
			})
		}
		doc.Table(table)
	}

	if len(s.Holdings) > 0 {
		doc.H2("Annual Returns by Asset")
		returns := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Asset", "Type", "Annual Return"},
			Rows:      [][]string{},
		}
		for _, h := range s.Holdings {
			returns.Rows = append(returns.Rows, []string{h.Asset, h.Type, fmt.Sprintf("%.2f%%", h.AnnualReturn)})
		}
		doc.Table(returns)

		doc.H2("Gain/Loss by Asset")
		maxAbs := 0.0
		for _, h := range s.Holdings {
			maxAbs = math.Max(maxAbs, math.Abs(h.GainLoss()))
		}
		gains := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignLeft},
			Header:    []string{"Asset", "Gain/Loss", "Return", ""},
			Rows:      [][]string{},
		}
		for _, h := range s.Holdings {
			gains.Rows = append(gains.Rows, []string{
				h.Asset,
				signedUSD(h.GainLoss()),
				fmt.Sprintf("%+.2f%%", h.ReturnPercentage()),
				bar(math.Abs(h.GainLoss()), maxAbs),
			})
		}
		doc.Table(gains)
	}

	return doc.String()
}

// PortfolioDataSummary is the compact textual summary of a portfolio
// analysis handed to the Q&A session as grounding context.
func PortfolioDataSummary(s *finlens.PortfolioSummary) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Total Investment: %s\n", usd(s.TotalInvestment))
	fmt.Fprintf(&buf, "Current Value: %s\n", usd(s.CurrentValue))
	fmt.Fprintf(&buf, "Total Gain/Loss: %s\n", signedUSD(s.TotalGainLoss))
	fmt.Fprintf(&buf, "Average Return: %.2f%%\n", s.AvgAnnualReturn)
	for _, h := range s.Holdings {
		fmt.Fprintf(&buf, "%s (%s): invested %s, now %s, return %.2f%%\n",
			h.Asset, h.Type, usd(h.PurchasePrice), usd(h.CurrentValue), h.ReturnPercentage())
	}
	return buf.String()
}
