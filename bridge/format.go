package bridge

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/uhppoted/sheets-bridge/grid"
)

// FormatAsText applies the literal text number format to the data range of the selected sheet. The data range of
// an empty sheet is A1.
func (b *Bridge) FormatAsText(ctx context.Context, spreadsheetID string, ref SheetRef) error {
	sheet, err := b.findSheet(ctx, spreadsheetID, ref)
	if err != nil {
		return err
	}

	values, err := b.sheets.Values(ctx, spreadsheetID, grid.Quote(sheet.Title))
	if err != nil {
		return err
	}

	rows := max(values.Rows(), 1)
	cols := max(values.Cols(), 1)

	if err := b.sheets.FormatText(ctx, spreadsheetID, *sheet, rows, cols); err != nil {
		return err
	}

	b.log.WithFields(logrus.Fields{
		"spreadsheet": spreadsheetID,
		"sheet":       sheet.Title,
	}).Infof("formatted %vx%v data range as text", rows, cols)

	return nil
}
