package finlens

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Line-item names recognised in a P&L statement.
const (
	TotalRevenue          = "Total Revenue"
	GrossProfit           = "Gross Profit"
	OperatingProfit       = "Operating Profit (EBIT)"
	NetProfitAfterTax     = "Net Profit After Tax"
	TotalCOGS             = "Total COGS"
	TotalOperatingExp     = "Total Operating Expenses"
	MarketingAdvertising  = "Marketing & Advertising"
	SalariesWages         = "Salaries & Wages"
	InterestExpense       = "Interest Expense"
	Depreciation          = "Depreciation"
	OtherExpenses         = "Other Expenses"
	NetOtherIncomeExpense = "Net Other Income/Expense"
	IncomeTaxExpense      = "Income Tax Expense"
	NetProfitBeforeTax    = "Net Profit Before Tax"
)

// ErrInvariant reports a computation that produced a non-finite value.
// Every division in the metrics engine is guarded, so this should be
// unreachable; if it ever triggers it is a defect, not bad input.
var ErrInvariant = errors.New("non-finite value in metric calculations")

// PnLRow is one line item of a profit-and-loss statement: a metric name and
// its monthly USD amount.
type PnLRow struct {
	Metric string
	Amount Value
}

// PnLRowsFromTable converts an ingested row-set into P&L rows. CSV cells
// are always textual; the Value union handles row-sets built from other
// sources.
func PnLRowsFromTable(t *Table) []PnLRow {
	rows := make([]PnLRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		rows = append(rows, PnLRow{Metric: r["metric"], Amount: String(r["amount_month_usd"])})
	}
	return rows
}

// MetricSet holds the named amounts folded from a P&L row-set: one amount
// per metric name, last-seen-wins on duplicates.
type MetricSet struct {
	values map[string]float64

	// Unparsed lists the metric names whose amount failed to parse and was
	// recorded as 0. The zero is a defined value, not an error, but callers
	// and tests can tell it apart from a legitimate zero.
	Unparsed []string
}

// FoldMetrics builds a MetricSet from P&L rows. Metric names are
// whitespace-trimmed; amounts are normalized per Value.Float64.
func FoldMetrics(rows []PnLRow) *MetricSet {
	s := &MetricSet{values: make(map[string]float64, len(rows))}
	for _, row := range rows {
		name := strings.TrimSpace(row.Metric)
		amount, ok := row.Amount.Float64()
		if !ok {
			s.Unparsed = append(s.Unparsed, name)
		}
		s.values[name] = amount
	}
	return s
}

// Get returns the amount recorded for a metric name, or 0 when absent.
func (s *MetricSet) Get(name string) float64 { return s.values[name] }

// PnLMetrics is the fixed set of metrics derived from a P&L statement.
// Every metric is always present; a missing or zero denominator yields 0
// rather than an error or a non-finite value. Percentage fields are scaled
// by 100, the two ratio fields are not.
type PnLMetrics struct {
	GrossProfitMargin        float64
	OperatingProfitMargin    float64
	NetProfitMargin          float64
	COGSPercentage           float64
	OperatingExpenseRatio    float64
	MarketingEfficiency      float64
	SalariesWagesPercentage  float64
	InterestCoverageRatio    float64
	DepreciationPercentage   float64
	OtherExpensesPercentage  float64
	NetOtherIncomePercentage float64
	IncomeTaxPercentage      float64
}

// MetricEntry is one named derived metric.
type MetricEntry struct {
	Name    string
	Value   float64
	Percent bool // true when the value is a percentage rather than a plain ratio
}

// Entries returns the derived metrics as an ordered list, in report order.
func (m PnLMetrics) Entries() []MetricEntry {
	return []MetricEntry{
		{"Gross Profit Margin", m.GrossProfitMargin, true},
		{"Operating Profit Margin", m.OperatingProfitMargin, true},
		{"Net Profit Margin", m.NetProfitMargin, true},
		{"COGS Percentage", m.COGSPercentage, true},
		{"Operating Expense Ratio", m.OperatingExpenseRatio, true},
		{"Marketing Efficiency", m.MarketingEfficiency, false},
		{"Salaries & Wages Percentage", m.SalariesWagesPercentage, true},
		{"Interest Coverage Ratio", m.InterestCoverageRatio, false},
		{"Depreciation Percentage", m.DepreciationPercentage, true},
		{"Other Expenses Percentage", m.OtherExpensesPercentage, true},
		{"Net Other Income Percentage", m.NetOtherIncomePercentage, true},
		{"Income Tax Percentage", m.IncomeTaxPercentage, true},
	}
}

// ratio divides num by den, yielding 0 when the denominator is zero or the
// metric was absent. The guard is applied per formula, never globally.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// pct is ratio scaled to a percentage.
func pct(num, den float64) float64 { return ratio(num, den) * 100 }

// Calculate derives the fixed metrics from the folded amounts. It never
// returns a partial result: either the full set is produced, or an
// ErrInvariant if a guarded division still produced a non-finite value.
func (s *MetricSet) Calculate() (PnLMetrics, error) {
	revenue := s.Get(TotalRevenue)
	beforeTax := s.Get(NetProfitBeforeTax)

	m := PnLMetrics{
		GrossProfitMargin:        pct(s.Get(GrossProfit), revenue),
		OperatingProfitMargin:    pct(s.Get(OperatingProfit), revenue),
		NetProfitMargin:          pct(s.Get(NetProfitAfterTax), revenue),
		COGSPercentage:           pct(s.Get(TotalCOGS), revenue),
		OperatingExpenseRatio:    pct(s.Get(TotalOperatingExp), revenue),
		MarketingEfficiency:      ratio(revenue, s.Get(MarketingAdvertising)),
		SalariesWagesPercentage:  pct(s.Get(SalariesWages), revenue),
		InterestCoverageRatio:    ratio(s.Get(OperatingProfit), s.Get(InterestExpense)),
		DepreciationPercentage:   pct(s.Get(Depreciation), revenue),
		OtherExpensesPercentage:  pct(s.Get(OtherExpenses), revenue),
		NetOtherIncomePercentage: pct(s.Get(NetOtherIncomeExpense), revenue),
		IncomeTaxPercentage:      pct(s.Get(IncomeTaxExpense), beforeTax),
	}

	for _, e := range m.Entries() {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return PnLMetrics{}, fmt.Errorf("%w: %s", ErrInvariant, e.Name)
		}
	}
	return m, nil
}

// CalculateMetrics folds a P&L row-set and derives the fixed metric set in
// one call. It is a pure function: the same rows always produce the same
// metrics.
func CalculateMetrics(rows []PnLRow) (PnLMetrics, error) {
	return FoldMetrics(rows).Calculate()
}
