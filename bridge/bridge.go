// Package bridge implements the file/sheet synchronisation operations: converting workbooks to native
// spreadsheets, reading cells, picking the latest file of a listing, resolving folders, formatting sheets as
// text, extracting tabular data and upserting a sheet from a data file.
//
// The operations run synchronously against a Drive and a Spreadsheets implementation and hold no state between
// calls. Multi-step operations are not transactional - a failed step leaves the preceding steps in place.
package bridge

import (
	"context"
	"io"
	"iter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/uhppoted/sheets-bridge/grid"
)

const (
	NativeSpreadsheet = "application/vnd.google-apps.spreadsheet"
	NativeFolder      = "application/vnd.google-apps.folder"
)

type File struct {
	ID       string
	Name     string
	MimeType string
	Parents  []string
	Modified time.Time
	Trashed  bool
}

type Folder struct {
	ID      string
	Name    string
	Parents []string
}

// Sheet is a worksheet of a native spreadsheet.
type Sheet struct {
	ID    int64
	Title string
	Index int
}

// ValueInput determines whether values written to a sheet are stored verbatim or parsed as if typed by a user.
type ValueInput int

const (
	InputRaw ValueInput = iota
	InputUserEntered
)

func (v ValueInput) String() string {
	if v == InputUserEntered {
		return "USER_ENTERED"
	}

	return "RAW"
}

// Drive is the file storage half of the platform.
type Drive interface {
	Root() string
	File(ctx context.Context, fileID string) (*File, error)
	Files(ctx context.Context, folderID string) iter.Seq2[*File, error]
	Folders(ctx context.Context, parentID string, name string) iter.Seq2[*Folder, error]
	CreateFolder(ctx context.Context, parentID string, name string) (*Folder, error)

	// Import creates a native spreadsheet converted from the file. parentID is a placement hint only, an empty
	// parentID lets the platform choose.
	Import(ctx context.Context, file *File, name string, parentID string) (*File, error)
	Move(ctx context.Context, file *File, folderID string) (*File, error)
	Trash(ctx context.Context, fileID string) error
	Delete(ctx context.Context, fileID string) error
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)
}

// Spreadsheets is the native spreadsheet half of the platform. Ranges are in A1 notation and a range that is
// only a sheet title addresses the sheet's data range.
type Spreadsheets interface {
	Sheets(ctx context.Context, spreadsheetID string) ([]Sheet, error)
	Values(ctx context.Context, spreadsheetID string, a1 string) (grid.Grid, error)
	AddSheet(ctx context.Context, spreadsheetID string, title string) (*Sheet, error)
	Clear(ctx context.Context, spreadsheetID string, sheet Sheet) error
	Write(ctx context.Context, spreadsheetID string, a1 string, values grid.Grid, input ValueInput) error
	FormatText(ctx context.Context, spreadsheetID string, sheet Sheet, rows, cols int) error
}

type Bridge struct {
	drive  Drive
	sheets Spreadsheets
	log    *logrus.Entry
}

func New(drive Drive, sheets Spreadsheets, logger *logrus.Logger) *Bridge {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Bridge{
		drive:  drive,
		sheets: sheets,
		log:    logger.WithField("component", "bridge"),
	}
}

// Drive returns the file storage the bridge operates on.
func (b *Bridge) Drive() Drive {
	return b.drive
}
