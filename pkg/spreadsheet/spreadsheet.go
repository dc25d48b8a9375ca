// Package spreadsheet reads and writes flat tables as .xlsx or .csv
// files. It knows nothing about cars: callers hand it a header row and
// string cells, and get the same shape back on read. The format is
// chosen by file extension.
package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteTable writes header + rows to path, picking the codec from the
// extension (.xlsx or .csv).
func WriteTable(path string, header []string, rows [][]string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeCSV(path, header, rows)
	case ".xlsx":
		return writeXLSX(path, header, rows)
	default:
		return fmt.Errorf("spreadsheet: unsupported format %q (use .xlsx or .csv)", filepath.Ext(path))
	}
}

// ReadTable reads a table from path, picking the codec from the
// extension. The first row is returned as the header.
func ReadTable(path string) (header []string, rows [][]string, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		return readXLSX(path)
	default:
		return nil, nil, fmt.Errorf("spreadsheet: unsupported format %q (use .xlsx or .csv)", filepath.Ext(path))
	}
}

// ── CSV ───────────────────────────────────────────────────────────────────────

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("spreadsheet: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("spreadsheet: write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("spreadsheet: write rows: %w", err)
	}
	w.Flush()
	return w.Error()
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("spreadsheet: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are resolved against the header later
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("spreadsheet: read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

// ── XLSX ──────────────────────────────────────────────────────────────────────

func writeXLSX(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	for c, h := range header {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("spreadsheet: set header cell: %w", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("spreadsheet: set cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("spreadsheet: save %s: %w", path, err)
	}
	return nil
}

func readXLSX(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("spreadsheet: open %s: %w", path, err)
	}
	defer f.Close()

	all, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("spreadsheet: read %s: %w", path, err)
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}
