package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carstock/carstock/app/models"
	"github.com/carstock/carstock/pkg/logger"
	"github.com/carstock/carstock/pkg/spreadsheet"
)

// ExportColumns is the flat-table column order, snake_case so an
// exported file can be fed straight back into Import.
var ExportColumns = []string{
	"id", "make", "model", "year", "price", "color", "type", "condition",
	"drive_trains", "engine_power", "liter_capacity", "salesperson", "image_path",
}

// importColumns are the columns an import file must carry. id and
// image_path are ignored on the way in: ids are reassigned and images
// never travel through spreadsheets.
var importColumns = []string{
	"make", "model", "year", "price", "color", "type", "condition",
	"drive_trains", "engine_power", "liter_capacity", "salesperson",
}

// Transfer moves inventory in and out of spreadsheet files. Import
// funnels every row through Inventory.Create, so a spreadsheet row
// faces exactly the same validation as direct entry.
type Transfer struct {
	inv *Inventory
}

func NewTransfer(inv *Inventory) *Transfer {
	return &Transfer{inv: inv}
}

// Export writes every listing to path (.xlsx or .csv).
func (t *Transfer) Export(path string) (int, error) {
	cars := t.inv.All()

	rows := make([][]string, 0, len(cars))
	for _, c := range cars {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(c.ID), 10),
			c.Make,
			c.Model,
			strconv.Itoa(c.Year),
			strconv.FormatFloat(c.Price, 'f', -1, 64),
			c.Color,
			c.Type,
			c.Condition,
			c.DriveTrains,
			strconv.Itoa(c.EnginePower),
			strconv.Itoa(c.LiterCapacity),
			c.Salesperson,
			c.ImagePath,
		})
	}

	if err := spreadsheet.WriteTable(path, ExportColumns, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ImportReport summarises one import run.
type ImportReport struct {
	OK     int
	Failed int
	Errors []string // one entry per failed row, capped for readability
}

const maxReportedErrors = 20

// Import reads path and creates one listing per row. A bad row is
// counted and reported but never aborts the batch.
func (t *Transfer) Import(path string) (ImportReport, error) {
	header, rows, err := spreadsheet.ReadTable(path)
	if err != nil {
		return ImportReport{}, err
	}

	colIdx := map[string]int{}
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, col := range importColumns {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return ImportReport{}, fmt.Errorf("import: missing columns: %s", strings.Join(missing, ", "))
	}

	var report ImportReport
	for i, row := range rows {
		in, err := parseRow(row, colIdx)
		if err == nil {
			_, err = t.inv.Create(in)
		}
		if err != nil {
			report.Failed++
			if len(report.Errors) < maxReportedErrors {
				report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", i+2, err))
			}
			continue
		}
		report.OK++
	}

	logger.Info("import finished", "path", path, "ok", report.OK, "failed", report.Failed)
	return report, nil
}

// parseRow turns one raw spreadsheet row into a CarInput. Numeric
// parsing failures reject the row before it reaches validation.
func parseRow(row []string, colIdx map[string]int) (models.CarInput, error) {
	cell := func(col string) string {
		i, ok := colIdx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err := strconv.Atoi(cell("year"))
	if err != nil {
		return models.CarInput{}, fmt.Errorf("bad year %q", cell("year"))
	}
	price, err := strconv.ParseFloat(cell("price"), 64)
	if err != nil {
		return models.CarInput{}, fmt.Errorf("bad price %q", cell("price"))
	}
	engine, err := strconv.Atoi(cell("engine_power"))
	if err != nil {
		return models.CarInput{}, fmt.Errorf("bad engine_power %q", cell("engine_power"))
	}
	liter, err := strconv.Atoi(cell("liter_capacity"))
	if err != nil {
		return models.CarInput{}, fmt.Errorf("bad liter_capacity %q", cell("liter_capacity"))
	}

	return models.CarInput{
		Make:          cell("make"),
		Model:         cell("model"),
		Year:          year,
		Price:         price,
		Color:         cell("color"),
		Type:          cell("type"),
		Condition:     cell("condition"),
		DriveTrains:   cell("drive_trains"),
		EnginePower:   engine,
		LiterCapacity: liter,
		Salesperson:   cell("salesperson"),
	}, nil
}
