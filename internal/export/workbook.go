// Package export writes chart aggregates to spreadsheets.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteChart writes one chart as a single-sheet workbook.
func WriteChart(w io.Writer, spec charts.Spec) error {
	return WriteWorkbook(w, []charts.Spec{spec})
}

// WriteWorkbook writes every spec to its own sheet, named after the chart id,
// with a bold header row followed by one row per data item.
func WriteWorkbook(w io.Writer, specs []charts.Spec) error {
	if len(specs) == 0 {
		return errors.New("export: no charts to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, spec := range specs {
		name := SheetName(spec.ID)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("rename sheet %s: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("add sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, spec, headerStyle); err != nil {
			return fmt.Errorf("write sheet %s: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, spec charts.Spec, headerStyle int) error {
	header, rows := spec.Table()

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// SheetName derives a valid sheet name from a chart id.
func SheetName(id string) string {
	if id == "" {
		return "chart"
	}
	if len(id) > maxSheetName {
		return id[:maxSheetName]
	}
	return id
}
