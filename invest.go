package finlens

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Holding is one row of an investment-portfolio file.
type Holding struct {
	Asset         string
	Type          string
	PurchaseDate  time.Time
	PurchasePrice float64
	CurrentValue  float64
	AnnualReturn  float64 // pre-supplied annual return, in percent
}

// GainLoss is the holding's unrealized gain (or loss when negative).
func (h Holding) GainLoss() float64 { return h.CurrentValue - h.PurchasePrice }

// ReturnPercentage is the gain/loss relative to the purchase price, scaled
// to a percentage. A zero purchase price yields 0 rather than a non-finite
// value.
func (h Holding) ReturnPercentage() float64 {
	return pct(h.GainLoss(), h.PurchasePrice)
}

// ParseHoldings converts an ingested row-set into holdings. A row with any
// unparseable numeric or date field is dropped entirely; the second return
// value counts the dropped rows.
func ParseHoldings(t *Table) (holdings []Holding, dropped int, err error) {
	if !t.HasColumns(portfolioColumns...) {
		return nil, 0, fmt.Errorf("%w: want %s", ErrUnknownFormat, strings.Join(portfolioColumns, ", "))
	}
	for _, row := range t.Rows {
		date, derr := ParseDate(row["Purchase_Date"])
		purchase, perr := parseAmount(row["Purchase_Price"])
		current, cerr := parseAmount(row["Current_Value"])
		annual, aerr := parseAmount(row["Annual_Return"])
		if derr != nil || perr != nil || cerr != nil || aerr != nil {
			dropped++
			continue
		}
		holdings = append(holdings, Holding{
			Asset:         strings.TrimSpace(row["Asset"]),
			Type:          strings.TrimSpace(row["Type"]),
			PurchaseDate:  date,
			PurchasePrice: purchase,
			CurrentValue:  current,
			AnnualReturn:  annual,
		})
	}
	return holdings, dropped, nil
}

// TypeValue is the summed current value of all holdings of one asset type.
type TypeValue struct {
	Type  string
	Value float64
}

// PortfolioSummary is the aggregate view of an investment portfolio.
type PortfolioSummary struct {
	TotalInvestment float64
	CurrentValue    float64
	TotalGainLoss   float64
	AvgAnnualReturn float64     // mean of the holdings' annual-return field
	Distribution    []TypeValue // current value by asset type, sorted by type
	Holdings        []Holding
}

// AnalyzePortfolio aggregates a holding list.
func AnalyzePortfolio(holdings []Holding) *PortfolioSummary {
	invested := decimal.Zero
	current := decimal.Zero
	annual := decimal.Zero
	byType := make(map[string]decimal.Decimal)

	for _, h := range holdings {
		invested = invested.Add(decimal.NewFromFloat(h.PurchasePrice))
		current = current.Add(decimal.NewFromFloat(h.CurrentValue))
		annual = annual.Add(decimal.NewFromFloat(h.AnnualReturn))
		byType[h.Type] = byType[h.Type].Add(decimal.NewFromFloat(h.CurrentValue))
	}

	s := &PortfolioSummary{
		TotalInvestment: invested.InexactFloat64(),
		CurrentValue:    current.InexactFloat64(),
		TotalGainLoss:   current.Sub(invested).InexactFloat64(),
		Holdings:        holdings,
	}
	if len(holdings) > 0 {
		s.AvgAnnualReturn = annual.Div(decimal.NewFromInt(int64(len(holdings)))).InexactFloat64()
	}

	for typ, value := range byType {
		s.Distribution = append(s.Distribution, TypeValue{Type: typ, Value: value.InexactFloat64()})
	}
	sort.Slice(s.Distribution, func(i, j int) bool { return s.Distribution[i].Type < s.Distribution[j].Type })
	return s
}
