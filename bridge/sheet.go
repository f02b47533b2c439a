package bridge

import (
	"context"
	"fmt"
	"strings"
)

func (b *Bridge) findSheet(ctx context.Context, spreadsheetID string, ref SheetRef) (*Sheet, error) {
	list, err := b.sheets.Sheets(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	if ref.Name != "" {
		if sheet := lookup(list, ref.Name); sheet != nil {
			return sheet, nil
		}

		return nil, fmt.Errorf("%w ('%v' in %v)", ErrSheetNotFound, ref.Name, spreadsheetID)
	}

	if ref.Index < 0 || ref.Index >= len(list) {
		return nil, fmt.Errorf("%w (index %v, spreadsheet %v has %v sheets)", ErrSheetIndex, ref.Index, spreadsheetID, len(list))
	}

	for _, sheet := range list {
		if sheet.Index == ref.Index {
			return &sheet, nil
		}
	}

	return &list[ref.Index], nil
}

func lookup(list []Sheet, title string) *Sheet {
	for _, sheet := range list {
		if sheet.Title == title {
			return &sheet
		}
	}

	return nil
}

// lookupFold matches a title ignoring case, the way the platform compares sheet names when adding a sheet.
func lookupFold(list []Sheet, title string) *Sheet {
	for _, sheet := range list {
		if strings.EqualFold(sheet.Title, title) {
			return &sheet
		}
	}

	return nil
}
