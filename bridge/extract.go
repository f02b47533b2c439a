package bridge

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/uhppoted/sheets-bridge/grid"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNative
	KindCSV
	KindTSV
	KindWorkbook
)

var workbooks = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
	"application/vnd.ms-excel.sheet.macroenabled.12":                    true,
	"application/vnd.oasis.opendocument.spreadsheet":                    true,
	"application/x-vnd.oasis.opendocument.spreadsheet":                  true,
}

// Classify determines how a file is read, from its MIME type or failing that its extension.
func Classify(file *File) Kind {
	mimetype := strings.ToLower(file.MimeType)

	switch {
	case mimetype == NativeSpreadsheet:
		return KindNative
	case mimetype == "text/csv":
		return KindCSV
	case mimetype == "text/tab-separated-values":
		return KindTSV
	case workbooks[mimetype]:
		return KindWorkbook
	}

	switch strings.ToLower(path.Ext(file.Name)) {
	case ".csv":
		return KindCSV
	case ".tsv":
		return KindTSV
	case ".xlsx", ".xlsm", ".xls", ".ods":
		return KindWorkbook
	}

	return KindUnknown
}

// ExtractTabularData reads a file as a grid. CSV and TSV files are parsed as text, native spreadsheets are read
// from the selected sheet and workbooks are converted to a scratch spreadsheet which is deleted once read.
func (b *Bridge) ExtractTabularData(ctx context.Context, source *File, ref SheetRef) (grid.Grid, error) {
	log := b.log.WithFields(logrus.Fields{
		"file": source.ID,
		"name": source.Name,
	})

	switch Classify(source) {
	case KindCSV:
		log.Debug("extracting CSV")
		return b.parse(ctx, source, grid.CSV)

	case KindTSV:
		log.Debug("extracting TSV")
		return b.parse(ctx, source, grid.TSV)

	case KindNative:
		log.Debug("extracting spreadsheet")
		return b.read(ctx, source.ID, ref)

	case KindWorkbook:
		log.Debug("extracting workbook")
		return b.extractWorkbook(ctx, source, ref)

	default:
		return nil, fmt.Errorf("%w (%v: %v)", ErrUnsupportedType, source.Name, source.MimeType)
	}
}

func (b *Bridge) parse(ctx context.Context, source *File, comma rune) (grid.Grid, error) {
	blob, err := b.drive.Download(ctx, source.ID)
	if err != nil {
		return nil, fmt.Errorf("unable to download %v (%w)", source.Name, err)
	}

	defer blob.Close()

	g, err := grid.ParseCSV(blob, comma)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %v (%w)", source.Name, err)
	}

	return g, nil
}

func (b *Bridge) read(ctx context.Context, spreadsheetID string, ref SheetRef) (grid.Grid, error) {
	sheet, err := b.findSheet(ctx, spreadsheetID, ref)
	if err != nil {
		return nil, err
	}

	return b.sheets.Values(ctx, spreadsheetID, grid.Quote(sheet.Title))
}

func (b *Bridge) extractWorkbook(ctx context.Context, source *File, ref SheetRef) (g grid.Grid, err error) {
	converted, err := b.ConvertToNativeSheet(ctx, source, ConvertOptions{Destination: Scratch(), KeepSource: true})
	if err != nil {
		return nil, err
	}

	defer func() {
		if errx := b.drive.Delete(ctx, converted.ID); errx != nil {
			err = errors.Join(err, fmt.Errorf("unable to delete scratch spreadsheet %v (%w)", converted.ID, errx))
		} else {
			b.log.WithField("spreadsheet", converted.ID).Debug("deleted scratch spreadsheet")
		}
	}()

	return b.read(ctx, converted.ID, ref)
}
