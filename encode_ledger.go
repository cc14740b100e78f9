package tradestats

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/etnz/tradestats/date"
)

// Format is a ledger file format.
type Format int

const (
	CSV   Format = iota // comma separated values with a header row
	TSV                 // tab separated values with a header row
	XLSX                // first sheet of an Excel workbook with a header row
	JSONL               // one json trade object per line
)

// ErrUnsupportedFormat is returned for a file extension with no matching Format.
var ErrUnsupportedFormat = errors.New("unsupported file format")

func (f Format) String() string {
	switch f {
	case CSV:
		return "csv"
	case TSV:
		return "tsv"
	case XLSX:
		return "xlsx"
	case JSONL:
		return "jsonl"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath returns the format matching the file extension: .csv, .txt
// or .tsv (tab separated), .xlsx and .jsonl.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "csv":
		return CSV, nil
	case "txt", "tsv":
		return TSV, nil
	case "xlsx":
		return XLSX, nil
	case "jsonl":
		return JSONL, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Columns are the ledger table headers, in their canonical order.
var Columns = []string{"Date", "Symbol", "Type", "Quantity", "Price", "Total Value", "Portfolio Value"}

const (
	colDate = iota
	colSymbol
	colType
	colQuantity
	colPrice
	colTotalValue
	colPortfolioValue
)

// columnKey normalizes a header for matching: "Total Value", "total_value" and
// "TotalValue" are the same column.
func columnKey(header string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "", "\ufeff", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(header)))
}

// DecodeLedger reads a ledger in format f. Monetary amounts are set in currency.
//
// Tables (CSV, TSV, XLSX) must start with a header row naming the columns, in
// any order. The "Total Value" column is optional, it defaults to quantity ×
// price. Every record is validated.
func DecodeLedger(r io.Reader, f Format, currency string) (*Ledger, error) {
	var (
		records []TradeRecord
		err     error
	)
	switch f {
	case CSV, TSV:
		cr := csv.NewReader(r)
		if f == TSV {
			cr.Comma = '\t'
			cr.LazyQuotes = true
		}
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		var rows [][]string
		rows, err = cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("cannot read %v ledger: %w", f, err)
		}
		records, err = decodeTable(rows, currency)
	case XLSX:
		var rows [][]string
		rows, err = readXLSX(r)
		if err != nil {
			return nil, err
		}
		records, err = decodeTable(rows, currency)
	case JSONL:
		records, err = decodeJSONL(r, currency)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, err
	}

	ledger := NewLedger(records...)
	ledger.currency = currency
	if err := ledger.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ledger: %w", err)
	}
	return ledger, nil
}

// decodeTable converts rows, the first one being the header, into records.
func decodeTable(rows [][]string, currency string) ([]TradeRecord, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	index := make([]int, len(Columns))
	for i := range index {
		index[i] = -1
	}
	for i, h := range rows[0] {
		for c, name := range Columns {
			if columnKey(h) == columnKey(name) {
				index[c] = i
			}
		}
	}
	var missing []string
	for c, i := range index {
		if i < 0 && c != colTotalValue {
			missing = append(missing, Columns[c])
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns %s in header %q", strings.Join(missing, ", "), rows[0])
	}

	var records []TradeRecord
	for n, row := range rows[1:] {
		line := n + 2 // 1-based, after the header.
		if blank(row) {
			continue
		}
		cell := func(c int) string {
			if i := index[c]; i >= 0 && i < len(row) {
				return strings.TrimSpace(row[i])
			}
			return ""
		}
		rec, err := parseRecord(cell, currency)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseRecord parses the cells of one table row.
func parseRecord(cell func(int) string, currency string) (rec TradeRecord, err error) {
	column := func(c int, err error) error {
		return fmt.Errorf("column %q: %w", Columns[c], err)
	}
	if rec.Date, err = date.Parse(cell(colDate)); err != nil {
		return rec, column(colDate, err)
	}
	rec.Symbol = cell(colSymbol)
	if rec.Type, err = ParseTradeType(cell(colType)); err != nil {
		return rec, column(colType, err)
	}
	if rec.Quantity, err = ParseQuantity(number(cell(colQuantity))); err != nil {
		return rec, column(colQuantity, err)
	}
	if rec.Price, err = ParseMoney(number(cell(colPrice)), currency); err != nil {
		return rec, column(colPrice, err)
	}
	if total := cell(colTotalValue); total != "" {
		if rec.TotalValue, err = ParseMoney(number(total), currency); err != nil {
			return rec, column(colTotalValue, err)
		}
	} else {
		rec.TotalValue = rec.Price.Mul(rec.Quantity)
	}
	if rec.PortfolioValue, err = ParseMoney(number(cell(colPortfolioValue)), currency); err != nil {
		return rec, column(colPortfolioValue, err)
	}
	return rec, nil
}

// number drops thousands separators.
func number(s string) string { return strings.ReplaceAll(s, ",", "") }

// decodeJSONL reads one trade per line, empty lines are skipped.
func decodeJSONL(r io.Reader, currency string) ([]TradeRecord, error) {
	var records []TradeRecord
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}
		var jt jsonTrade
		if err := json.Unmarshal(lineBytes, &jt); err != nil {
			return nil, fmt.Errorf("line %d: cannot decode trade %q: %w", line, string(lineBytes), err)
		}
		records = append(records, jt.record(currency))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read jsonl ledger: %w", err)
	}
	return records, nil
}

// row returns the table cells of a record, in Columns order.
func (t TradeRecord) row() []string {
	return []string{
		t.Date.String(),
		t.Symbol,
		t.Type.String(),
		t.Quantity.String(),
		t.Price.Decimal().String(),
		t.TotalValue.Decimal().String(),
		t.PortfolioValue.Decimal().String(),
	}
}

// EncodeLedger writes the ledger in format f, trades in chronological order.
// Tables start with the Columns header.
func EncodeLedger(w io.Writer, l *Ledger, f Format) error {
	switch f {
	case CSV, TSV:
		cw := csv.NewWriter(w)
		if f == TSV {
			cw.Comma = '\t'
		}
		if err := cw.Write(Columns); err != nil {
			return fmt.Errorf("cannot write header: %w", err)
		}
		for _, rec := range l.records {
			if err := cw.Write(rec.row()); err != nil {
				return fmt.Errorf("cannot write trade: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	case XLSX:
		return writeXLSX(w, l)
	case JSONL:
		for _, rec := range l.records {
			if err := EncodeTrade(w, rec); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
}

// EncodeTrade marshals a single trade to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeTrade(w io.Writer, t TradeRecord) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal trade: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write trade: %w", err)
	}
	return nil
}
