package finlens

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// this file handles the ingestion side: reading a CSV file into an
// in-memory row-set and figuring out what kind of financial data it holds.

// ErrUnknownFormat is returned when a row-set matches none of the known
// financial file formats.
var ErrUnknownFormat = errors.New("unable to determine file type, missing required columns")

// Row is a single record of a row-set, mapping column name to raw value.
type Row map[string]string

// Table is an in-memory row-set parsed from a CSV file. Columns preserves
// the header order; Rows preserves the file order.
type Table struct {
	Columns []string
	Rows    []Row
}

// ReadCSV parses CSV text from r into a Table. The first record is the
// header and defines the column names; every following record becomes a Row.
// Column names are whitespace-trimmed.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	t := &Table{}
	for _, h := range header {
		t.Columns = append(t.Columns, strings.TrimSpace(h))
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV record: %w", err)
		}
		row := make(Row, len(t.Columns))
		for i, val := range record {
			if i >= len(t.Columns) {
				break
			}
			row[t.Columns[i]] = val
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ReadCSVFile reads the CSV file at path into a Table.
//
// A missing file surfaces as an error matching fs.ErrNotExist; any other
// failure wraps the underlying I/O or parse error.
func ReadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open CSV file %q: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSV file %q: %w", path, err)
	}
	return t, nil
}

// WriteJSON writes the row-set as a JSON array of objects, one per row.
func (t *Table) WriteJSON(w io.Writer) error {
	rows := t.Rows
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// HasColumns reports whether the table header contains every given column.
func (t *Table) HasColumns(cols ...string) bool {
	for _, c := range cols {
		found := false
		for _, h := range t.Columns {
			if h == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Kind identifies which financial file format a row-set holds.
type Kind int

const (
	Unknown Kind = iota
	ProfitLoss
	PersonalFinance
	Portfolio
)

func (k Kind) String() string {
	switch k {
	case ProfitLoss:
		return "Profit & Loss Statement"
	case PersonalFinance:
		return "Personal Finance"
	case Portfolio:
		return "Investment Portfolio"
	default:
		return "Unknown"
	}
}

// Required columns per file format.
var (
	profitLossColumns      = []string{"metric", "amount_month_usd"}
	personalFinanceColumns = []string{"Category", "Amount", "Date"}
	portfolioColumns       = []string{"Asset", "Type", "Purchase_Date", "Purchase_Price", "Current_Value", "Annual_Return"}
)

// DetectKind classifies the table by its header columns. It returns
// ErrUnknownFormat when the header matches none of the known formats.
func DetectKind(t *Table) (Kind, error) {
	switch {
	case t.HasColumns(profitLossColumns...):
		return ProfitLoss, nil
	case t.HasColumns(personalFinanceColumns...):
		return PersonalFinance, nil
	case t.HasColumns(portfolioColumns...):
		return Portfolio, nil
	default:
		return Unknown, ErrUnknownFormat
	}
}
