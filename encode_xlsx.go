package tradestats

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ledgerSheet is the name of the sheet written by writeXLSX.
const ledgerSheet = "Ledger"

// readXLSX returns the rows of the first sheet of the workbook.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open xlsx ledger: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("xlsx ledger has no sheet")
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// writeXLSX writes the ledger as a single sheet workbook. Dates are written as
// text, amounts and quantities as numbers.
func writeXLSX(w io.Writer, l *Ledger) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ledgerSheet); err != nil {
		return fmt.Errorf("cannot name sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(ledgerSheet, "A1", &header); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}

	for i, rec := range l.records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			rec.Date.String(),
			rec.Symbol,
			rec.Type.String(),
			rec.Quantity.Int64(),
			rec.Price.AsFloat(),
			rec.TotalValue.AsFloat(),
			rec.PortfolioValue.AsFloat(),
		}
		if err := f.SetSheetRow(ledgerSheet, cell, &row); err != nil {
			return fmt.Errorf("cannot write trade #%d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write xlsx ledger: %w", err)
	}
	return nil
}
