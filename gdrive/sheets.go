package gdrive

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/sheets-bridge/bridge"
	"github.com/uhppoted/sheets-bridge/grid"
)

var _ bridge.Spreadsheets = (*Sheets)(nil)

type Sheets struct {
	service *sheets.Service
}

func NewSheets(ctx context.Context, opts ...option.ClientOption) (*Sheets, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Google Sheets client (%w)", err)
	}

	return &Sheets{service: service}, nil
}

func (s *Sheets) Sheets(ctx context.Context, spreadsheetID string) ([]bridge.Sheet, error) {
	spreadsheet, err := s.service.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	list := []bridge.Sheet{}
	for _, sheet := range spreadsheet.Sheets {
		if p := sheet.Properties; p != nil {
			list = append(list, bridge.Sheet{
				ID:    p.SheetId,
				Title: p.Title,
				Index: int(p.Index),
			})
		}
	}

	return list, nil
}

// Values returns the unformatted cell values in the range, with dates and times as formatted strings.
func (s *Sheets) Values(ctx context.Context, spreadsheetID string, a1 string) (grid.Grid, error) {
	response, err := s.service.Spreadsheets.Values.Get(spreadsheetID, a1).
		ValueRenderOption("UNFORMATTED_VALUE").
		DateTimeRenderOption("FORMATTED_STRING").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	g := grid.Grid{}
	for _, row := range response.Values {
		g = append(g, row)
	}

	return g, nil
}

func (s *Sheets) AddSheet(ctx context.Context, spreadsheetID string, title string) (*bridge.Sheet, error) {
	rq := sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: title,
			},
		},
	}

	response, err := s.update(ctx, spreadsheetID, &rq)
	if err != nil {
		return nil, err
	}

	if len(response.Replies) == 0 || response.Replies[0].AddSheet == nil || response.Replies[0].AddSheet.Properties == nil {
		return nil, fmt.Errorf("invalid AddSheet response for '%v'", title)
	}

	p := response.Replies[0].AddSheet.Properties

	return &bridge.Sheet{
		ID:    p.SheetId,
		Title: p.Title,
		Index: int(p.Index),
	}, nil
}

// Clear removes the values and formatting of every cell in the sheet.
func (s *Sheets) Clear(ctx context.Context, spreadsheetID string, sheet bridge.Sheet) error {
	rq := sheets.Request{
		UpdateCells: &sheets.UpdateCellsRequest{
			Range:  gridRange(sheet, 0, 0),
			Fields: "*",
		},
	}

	_, err := s.update(ctx, spreadsheetID, &rq)

	return err
}

func (s *Sheets) Write(ctx context.Context, spreadsheetID string, a1 string, values grid.Grid, input bridge.ValueInput) error {
	rq := sheets.ValueRange{
		Range:          a1,
		MajorDimension: "ROWS",
		Values:         [][]any(values),
	}

	_, err := s.service.Spreadsheets.Values.Update(spreadsheetID, a1, &rq).
		ValueInputOption(input.String()).
		Context(ctx).
		Do()

	return err
}

// FormatText sets the number format of the top-left rows x cols cells of the sheet to plain text.
func (s *Sheets) FormatText(ctx context.Context, spreadsheetID string, sheet bridge.Sheet, rows, cols int) error {
	rq := sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: gridRange(sheet, rows, cols),
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					NumberFormat: &sheets.NumberFormat{
						Type:    "TEXT",
						Pattern: "@",
					},
				},
			},
			Fields: "userEnteredFormat.numberFormat",
		},
	}

	_, err := s.update(ctx, spreadsheetID, &rq)

	return err
}

func (s *Sheets) update(ctx context.Context, spreadsheetID string, requests ...*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}

	return s.service.Spreadsheets.BatchUpdate(spreadsheetID, &rq).Context(ctx).Do()
}

// gridRange returns the zero based range for the top-left rows x cols cells or the whole sheet if rows or cols
// is 0. SheetId is always sent because the first sheet's ID is usually 0.
func gridRange(sheet bridge.Sheet, rows, cols int) *sheets.GridRange {
	r := sheets.GridRange{
		SheetId:         sheet.ID,
		ForceSendFields: []string{"SheetId"},
	}

	if rows > 0 && cols > 0 {
		r.StartRowIndex = 0
		r.EndRowIndex = int64(rows)
		r.StartColumnIndex = 0
		r.EndColumnIndex = int64(cols)
	}

	return &r
}
