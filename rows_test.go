package finlens

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("metric,amount_month_usd\nTotal Revenue,250000\nGross Profit,\"100,000\"\n"))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}
	if len(table.Columns) != 2 || table.Columns[0] != "metric" {
		t.Errorf("Columns = %v, want [metric amount_month_usd]", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(table.Rows))
	}
	if got := table.Rows[1]["amount_month_usd"]; got != "100,000" {
		t.Errorf("quoted cell = %q, want %q", got, "100,000")
	}
}

func TestReadCSVFileNotFound(t *testing.T) {
	_, err := ReadCSVFile(filepath.Join(t.TempDir(), "no-such.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadCSVFile() on a missing file = %v, want fs.ErrNotExist", err)
	}
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	if err := os.WriteFile(path, []byte("Category,Amount,Date\nSalary,5000,2024-03-01\n"), 0644); err != nil {
		t.Fatal(err)
	}
	table, err := ReadCSVFile(path)
	if err != nil {
		t.Fatalf("ReadCSVFile() failed: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0]["Category"] != "Salary" {
		t.Errorf("unexpected table: %+v", table)
	}
}

func TestWriteJSON(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("metric,amount_month_usd\nTotal Revenue,250000\n"))
	if err != nil {
		t.Fatalf("ReadCSV() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := table.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}

	var rows []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(rows) != 1 || rows[0]["metric"] != "Total Revenue" {
		t.Errorf("unexpected JSON rows: %+v", rows)
	}
}

func TestDetectKind(t *testing.T) {
	testCases := []struct {
		name    string
		header  []string
		want    Kind
		wantErr bool
	}{
		{
			name:   "profit and loss",
			header: []string{"metric", "amount_month_usd"},
			want:   ProfitLoss,
		},
		{
			name:   "personal finance",
			header: []string{"Category", "Amount", "Date"},
			want:   PersonalFinance,
		},
		{
			name:   "investment portfolio",
			header: []string{"Asset", "Type", "Purchase_Date", "Purchase_Price", "Current_Value", "Annual_Return"},
			want:   Portfolio,
		},
		{
			name:   "extra columns still detected",
			header: []string{"metric", "amount_month_usd", "notes"},
			want:   ProfitLoss,
		},
		{
			name:    "unknown format",
			header:  []string{"foo", "bar"},
			want:    Unknown,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := DetectKind(&Table{Columns: tc.header})
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("DetectKind() = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectKind() failed: %v", err)
			}
			if kind != tc.want {
				t.Errorf("DetectKind() = %v, want %v", kind, tc.want)
			}
		})
	}
}
