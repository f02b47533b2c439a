package bridge

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/uhppoted/sheets-bridge/grid"
)

// ReadCell returns the value of a single cell of the named sheet, rendered as text.
// An empty cell reads as "".
func (b *Bridge) ReadCell(ctx context.Context, spreadsheetID string, sheetName string, cell string) (string, error) {
	col, row, err := excelize.CellNameToCoordinates(cell)
	if err != nil {
		return "", fmt.Errorf("%w '%v' (%v)", ErrInvalidCell, cell, err)
	}

	sheet, err := b.findSheet(ctx, spreadsheetID, SheetNamed(sheetName))
	if err != nil {
		return "", err
	}

	a1, err := grid.Cell(sheet.Title, col, row)
	if err != nil {
		return "", err
	}

	values, err := b.sheets.Values(ctx, spreadsheetID, a1)
	if err != nil {
		return "", err
	}

	b.log.WithField("spreadsheet", spreadsheetID).Debugf("read cell %v", a1)

	if len(values) == 0 || len(values[0]) == 0 {
		return "", nil
	}

	return grid.Format(values[0][0]), nil
}
