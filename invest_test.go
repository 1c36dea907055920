package finlens

import (
	"strings"
	"testing"
)

func setupPortfolioTable(t *testing.T) *Table {
	t.Helper()
	table, err := ReadCSV(strings.NewReader(`Asset,Type,Purchase_Date,Purchase_Price,Current_Value,Annual_Return
AAPL,Stock,2024-03-01,150.25,180.50,20.13
BND,Bond,2023-06-15,100,102,2.50
ETH,Crypto,2024-01-10,2000,1500,-25.00
BAD,Stock,2024-02-01,not-a-price,100,5
LATE,Stock,bad-date,100,110,10
`))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}
	return table
}

func TestParseHoldings(t *testing.T) {
	holdings, dropped, err := ParseHoldings(setupPortfolioTable(t))
	if err != nil {
		t.Fatalf("ParseHoldings() failed: %v", err)
	}
	// any unparseable field disqualifies the whole row
	if dropped != 2 {
		t.Errorf("dropped = %d, want 2", dropped)
	}
	if len(holdings) != 3 {
		t.Fatalf("got %d holdings, want 3", len(holdings))
	}
}

func TestParseHoldingsMissingColumns(t *testing.T) {
	table := &Table{Columns: []string{"Asset", "Type"}}
	if _, _, err := ParseHoldings(table); err == nil {
		t.Fatal("ParseHoldings() on a table without price columns should fail")
	}
}

func TestHoldingGainLoss(t *testing.T) {
	h := Holding{Asset: "AAPL", PurchasePrice: 150, CurrentValue: 180}
	if got, want := h.GainLoss(), 30.0; got != want {
		t.Errorf("GainLoss() = %v, want %v", got, want)
	}
	if got, want := h.ReturnPercentage(), 20.0; got != want {
		t.Errorf("ReturnPercentage() = %v, want %v", got, want)
	}
}

func TestHoldingReturnPercentageZeroPurchase(t *testing.T) {
	h := Holding{Asset: "FREE", PurchasePrice: 0, CurrentValue: 100}
	if got := h.ReturnPercentage(); got != 0.0 {
		t.Errorf("ReturnPercentage() = %v, want 0.0", got)
	}
}

func TestAnalyzePortfolio(t *testing.T) {
	holdings := []Holding{
		{Asset: "AAPL", Type: "Stock", PurchasePrice: 150, CurrentValue: 180, AnnualReturn: 20},
		{Asset: "MSFT", Type: "Stock", PurchasePrice: 300, CurrentValue: 330, AnnualReturn: 10},
		{Asset: "BND", Type: "Bond", PurchasePrice: 100, CurrentValue: 102, AnnualReturn: 3},
	}
	s := AnalyzePortfolio(holdings)

	if got, want := s.TotalInvestment, 550.0; got != want {
		t.Errorf("TotalInvestment = %v, want %v", got, want)
	}
	if got, want := s.CurrentValue, 612.0; got != want {
		t.Errorf("CurrentValue = %v, want %v", got, want)
	}
	if got, want := s.TotalGainLoss, 62.0; got != want {
		t.Errorf("TotalGainLoss = %v, want %v", got, want)
	}
	if got, want := s.AvgAnnualReturn, 11.0; got != want {
		t.Errorf("AvgAnnualReturn = %v, want %v", got, want)
	}

	wantDist := []TypeValue{
		{Type: "Bond", Value: 102},
		{Type: "Stock", Value: 510},
	}
	if len(s.Distribution) != len(wantDist) {
		t.Fatalf("got %d distribution entries, want %d", len(s.Distribution), len(wantDist))
	}
	for i, w := range wantDist {
		if s.Distribution[i] != w {
			t.Errorf("Distribution[%d] = %+v, want %+v", i, s.Distribution[i], w)
		}
	}
}

func TestAnalyzePortfolioEmpty(t *testing.T) {
	s := AnalyzePortfolio(nil)
	if s.AvgAnnualReturn != 0 || s.TotalInvestment != 0 || s.TotalGainLoss != 0 {
		t.Errorf("empty portfolio should be all zeros, got %+v", s)
	}
}
