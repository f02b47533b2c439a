package bridge

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/uhppoted/sheets-bridge/grid"
)

// UpsertSheet replaces the contents of a sheet in the destination spreadsheet with the tabular data extracted
// from a data file, creating the sheet if necessary. The sheet is named after the data file (less extension)
// unless options.Target is set.
func (b *Bridge) UpsertSheet(ctx context.Context, spreadsheetID string, data *File, options UpsertOptions) (*Sheet, error) {
	title := options.Target
	if title == "" {
		title = targetTitle(data.Name)
	}

	g, err := b.ExtractTabularData(ctx, data, options.Source)
	if err != nil {
		return nil, err
	}

	sheet, err := b.ReplaceSheet(ctx, spreadsheetID, title, g, options.InferTypes)
	if err != nil {
		return nil, err
	}

	if options.DeleteDataFile {
		if err := b.drive.Trash(ctx, data.ID); err != nil {
			return nil, fmt.Errorf("unable to trash %v (%w)", data.Name, err)
		}

		b.log.WithField("file", data.ID).Info("trashed data file")
	}

	return sheet, nil
}

// ReplaceSheet clears (or creates) the titled sheet and writes the grid to it, anchored at A1. An exact title match
// is preferred, otherwise an existing sheet whose title differs only in case is replaced. Unless inferTypes is set
// the written range is formatted as text and the values are stored verbatim. An empty grid leaves the sheet empty.
func (b *Bridge) ReplaceSheet(ctx context.Context, spreadsheetID string, title string, g grid.Grid, inferTypes bool) (*Sheet, error) {
	log := b.log.WithFields(logrus.Fields{
		"spreadsheet": spreadsheetID,
		"sheet":       title,
	})

	list, err := b.sheets.Sheets(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	}

	sheet := lookup(list, title)
	if sheet == nil {
		sheet = lookupFold(list, title)
	}

	if sheet == nil {
		if sheet, err = b.sheets.AddSheet(ctx, spreadsheetID, title); err != nil {
			return nil, fmt.Errorf("unable to add sheet '%v' (%w)", title, err)
		}

		log.Info("created sheet")
	} else {
		if err := b.sheets.Clear(ctx, spreadsheetID, *sheet); err != nil {
			return nil, fmt.Errorf("unable to clear sheet '%v' (%w)", title, err)
		}

		log.Info("cleared sheet")
	}

	if g.Empty() {
		log.Warn("no data to write")
		return sheet, nil
	}

	rows := g.Rows()
	cols := g.Cols()

	a1, err := grid.Range(sheet.Title, rows, cols)
	if err != nil {
		return nil, err
	}

	input := InputUserEntered
	if !inferTypes {
		if err := b.sheets.FormatText(ctx, spreadsheetID, *sheet, rows, cols); err != nil {
			return nil, fmt.Errorf("unable to format sheet '%v' as text (%w)", title, err)
		}

		input = InputRaw
	}

	if err := b.sheets.Write(ctx, spreadsheetID, a1, g, input); err != nil {
		return nil, fmt.Errorf("unable to write sheet '%v' (%w)", title, err)
	}

	log.Infof("wrote %vx%v values (%v)", rows, cols, input)

	return sheet, nil
}

// targetTitle is the file name less its last extension, or the whole name if that would leave nothing.
func targetTitle(name string) string {
	if title := strings.TrimSuffix(name, path.Ext(name)); strings.TrimSpace(title) != "" {
		return title
	}

	return name
}
