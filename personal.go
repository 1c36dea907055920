package finlens

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FlowType classifies a transaction by the sign of its amount.
type FlowType int

const (
	Income FlowType = iota
	Expense
)

func (t FlowType) String() string {
	if t == Income {
		return "Income"
	}
	return "Expense"
}

// Transaction is one row of a personal-finance ledger: a signed amount,
// dated and labelled with a category. Positive amounts are income, negative
// amounts are expenses.
type Transaction struct {
	Category string
	Amount   float64
	Date     time.Time
}

// Type returns the flow type derived from the amount's sign.
func (tx Transaction) Type() FlowType {
	if tx.Amount > 0 {
		return Income
	}
	return Expense
}

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02 Jan 2006",
}

// ParseDate parses a transaction date in one of the accepted layouts.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}

// parseAmount parses a signed decimal amount, tolerating comma thousands
// separators and surrounding whitespace.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse amount %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}

// ParseTransactions converts an ingested row-set into transactions. Rows
// with an unparseable date or amount are dropped, not fatal; the second
// return value counts them so callers can warn the user.
func ParseTransactions(t *Table) (txs []Transaction, dropped int, err error) {
	if !t.HasColumns(personalFinanceColumns...) {
		return nil, 0, fmt.Errorf("%w: want %s", ErrUnknownFormat, strings.Join(personalFinanceColumns, ", "))
	}
	for _, row := range t.Rows {
		date, derr := ParseDate(row["Date"])
		amount, aerr := parseAmount(row["Amount"])
		if derr != nil || aerr != nil {
			dropped++
			continue
		}
		txs = append(txs, Transaction{
			Category: strings.TrimSpace(row["Category"]),
			Amount:   amount,
			Date:     date,
		})
	}
	return txs, dropped, nil
}

// CategoryFlow is the summed amount for one (category, type) pair. The
// total keeps the amounts' sign: expense flows are negative.
type CategoryFlow struct {
	Category string
	Type     FlowType
	Total    float64
}

// BalancePoint is the running balance after all transactions up to and
// including Date, in date order.
type BalancePoint struct {
	Date    time.Time
	Balance float64
}

// FinanceSummary is the aggregate view of a personal-finance ledger.
type FinanceSummary struct {
	TotalIncome   float64
	TotalExpenses float64 // absolute value of all negative amounts
	NetSavings    float64
	Categories    []CategoryFlow // sorted by category then type
	Balance       []BalancePoint // cumulative balance in date order
}

// AnalyzePersonalFinance aggregates a transaction list. Aggregation is
// order-independent except for the cumulative balance series, which sorts
// by date first.
func AnalyzePersonalFinance(txs []Transaction) *FinanceSummary {
	income := decimal.Zero
	expenses := decimal.Zero
	byCategory := make(map[string]map[FlowType]decimal.Decimal)

	for _, tx := range txs {
		d := decimal.NewFromFloat(tx.Amount)
		if tx.Amount > 0 {
			income = income.Add(d)
		} else {
			expenses = expenses.Add(d.Abs())
		}
		flows := byCategory[tx.Category]
		if flows == nil {
			flows = make(map[FlowType]decimal.Decimal)
			byCategory[tx.Category] = flows
		}
		flows[tx.Type()] = flows[tx.Type()].Add(d)
	}

	s := &FinanceSummary{
		TotalIncome:   income.InexactFloat64(),
		TotalExpenses: expenses.InexactFloat64(),
		NetSavings:    income.Sub(expenses).InexactFloat64(),
	}

	for category, flows := range byCategory {
		for typ, total := range flows {
			s.Categories = append(s.Categories, CategoryFlow{
				Category: category,
				Type:     typ,
				Total:    total.InexactFloat64(),
			})
		}
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		a, b := s.Categories[i], s.Categories[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Type < b.Type
	})

	s.Balance = balanceTrend(txs)
	return s
}

// CashFlowByCategory returns the net flow per category, sorted ascending by
// amount, for the category bar chart.
func (s *FinanceSummary) CashFlowByCategory() []CategoryFlow {
	net := make(map[string]float64)
	for _, cf := range s.Categories {
		net[cf.Category] += cf.Total
	}
	flows := make([]CategoryFlow, 0, len(net))
	for category, total := range net {
		flows = append(flows, CategoryFlow{Category: category, Total: total})
	}
	sort.Slice(flows, func(i, j int) bool {
		if flows[i].Total != flows[j].Total {
			return flows[i].Total < flows[j].Total
		}
		return flows[i].Category < flows[j].Category
	})
	return flows
}

// balanceTrend computes the running balance in date order. The input slice
// is not modified.
func balanceTrend(txs []Transaction) []BalancePoint {
	sorted := make([]Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	points := make([]BalancePoint, 0, len(sorted))
	balance := decimal.Zero
	for _, tx := range sorted {
		balance = balance.Add(decimal.NewFromFloat(tx.Amount))
		points = append(points, BalancePoint{Date: tx.Date, Balance: balance.InexactFloat64()})
	}
	return points
}
