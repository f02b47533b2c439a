package grid

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

var ErrNoSuchSheet = errors.New("no such worksheet")

// ReadXLSX reads the populated rows of a worksheet in an Office Open XML workbook. The worksheet is selected by
// name if name is not empty, otherwise by its zero based index. Cell values are the formatted strings stored in
// the workbook.
func ReadXLSX(r io.Reader, name string, index int) (Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	sheet := name
	if sheet == "" {
		list := f.GetSheetList()
		if index < 0 || index >= len(list) {
			return nil, fmt.Errorf("%w (index %v, workbook has %v worksheets)", ErrNoSuchSheet, index, len(list))
		}

		sheet = list[index]
	} else if ix, err := f.GetSheetIndex(sheet); err != nil || ix < 0 {
		return nil, fmt.Errorf("%w ('%v')", ErrNoSuchSheet, name)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	return FromStrings(rows), nil
}

// Sheets returns the worksheet names of a workbook, in workbook order.
func Sheets(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	return f.GetSheetList(), nil
}

// WriteXLSX writes the grid to a single worksheet workbook.
func WriteXLSX(w io.Writer, title string, g Grid) error {
	f := excelize.NewFile()

	defer f.Close()

	sheet := f.GetSheetName(0)
	if title != "" && title != sheet {
		if err := f.SetSheetName(sheet, title); err != nil {
			return err
		}

		sheet = title
	}

	for i, row := range g {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		values := append([]any{}, row...)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)

	return err
}
