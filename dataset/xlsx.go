package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX decodes a table from the first worksheet of an XLSX workbook, or
// from the worksheet named in opts.Sheet.
func ReadXLSX(r io.Reader, opts ReadOptions) (*Table, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}

	defer workbook.Close()

	sheet := opts.Sheet
	if sheet == "" {
		if sheet = workbook.GetSheetName(0); sheet == "" {
			return nil, fmt.Errorf("workbook has no worksheets")
		}
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	return build(rows)
}

// WriteXLSX encodes a table as a single-worksheet XLSX workbook. The
// worksheet is named 'Sheet1' unless sheet is not blank.
func WriteXLSX(w io.Writer, table *Table, sheet string) error {
	if table == nil || len(table.Header) == 0 {
		return fmt.Errorf("missing/invalid header row")
	}

	if sheet == "" {
		sheet = "Sheet1"
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	if sheet != "Sheet1" {
		if err := workbook.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}

	rows := append([][]string{table.Header}, table.Records...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}

		if err := workbook.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	return workbook.Write(w)
}
