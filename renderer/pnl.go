package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/finlens/finlens"
	md "github.com/nao1215/markdown"
)

// PnLMarkdown renders the derived P&L metrics as a markdown report.
// Unparsed lists the metric names whose amounts failed to parse; when
// non-empty a warning section follows the table.
func PnLMarkdown(m finlens.PnLMetrics, unparsed []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Financial Metrics")

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows:      [][]string{},
	}
	for _, e := range m.Entries() {
		value := fmt.Sprintf("%.2f", e.Value)
		if e.Percent {
			value += "%"
		}
		table.Rows = append(table.Rows, []string{e.Name, value})
	}
	doc.Table(table)

	if len(unparsed) > 0 {
		doc.PlainText(fmt.Sprintf("Warning: %d metric(s) could not be parsed and were recorded as 0: %s.",
			len(unparsed), strings.Join(unparsed, ", ")))
	}

	return doc.String()
}

// PnLDataSummary is the compact textual summary of derived P&L metrics
// handed to the Q&A session as grounding context.
func PnLDataSummary(m finlens.PnLMetrics) string {
	var b strings.Builder
	for _, e := range m.Entries() {
		fmt.Fprintf(&b, "%s: %.2f\n", e.Name, e.Value)
	}
	return b.String()
}
