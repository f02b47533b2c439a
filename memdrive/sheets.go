package memdrive

import (
	"context"
	"fmt"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/uhppoted/sheets-bridge/bridge"
	"github.com/uhppoted/sheets-bridge/grid"
)

var number = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)

type cell struct {
	col int
	row int
}

type worksheet struct {
	sheet  bridge.Sheet
	values map[cell]any
	text   map[cell]bool
}

func newWorksheet(id int64, title string, index int) *worksheet {
	return &worksheet{
		sheet: bridge.Sheet{
			ID:    id,
			Title: title,
			Index: index,
		},
		values: map[cell]any{},
		text:   map[cell]bool{},
	}
}

func imported(title string, g grid.Grid) *worksheet {
	ws := newWorksheet(0, title, 0)
	ws.write(1, 1, g, bridge.InputUserEntered)

	return ws
}

func (ws *worksheet) copy() *worksheet {
	return &worksheet{
		sheet:  ws.sheet,
		values: maps.Clone(ws.values),
		text:   maps.Clone(ws.text),
	}
}

// extent returns the bottom right corner of the data range or 0,0 if the sheet is empty.
func (ws *worksheet) extent() (int, int) {
	cols, rows := 0, 0
	for c := range ws.values {
		cols = max(cols, c.col)
		rows = max(rows, c.row)
	}

	return cols, rows
}

func (ws *worksheet) write(left, top int, g grid.Grid, input bridge.ValueInput) {
	for r, row := range g {
		for c, v := range row {
			if v == nil {
				continue
			}

			k := cell{col: left + c, row: top + r}
			if s, ok := v.(string); ok && s == "" {
				delete(ws.values, k)
				continue
			}

			if input == bridge.InputUserEntered && !ws.text[k] {
				v = infer(v)
			}

			ws.values[k] = v
		}
	}
}

// read returns the values in the area, trimming trailing empty cells from each row and trailing empty rows,
// with "" for the empty cells that remain.
func (ws *worksheet) read(area grid.Area) grid.Grid {
	g := grid.Grid{}

	for r := area.Top; r <= area.Bottom; r++ {
		row := []any{}
		last := 0
		for c := area.Left; c <= area.Right; c++ {
			v, ok := ws.values[cell{col: c, row: r}]
			if ok {
				last = c - area.Left + 1
			} else {
				v = ""
			}

			row = append(row, v)
		}

		g = append(g, row[:last])
	}

	for len(g) > 0 && len(g[len(g)-1]) == 0 {
		g = g[:len(g)-1]
	}

	return g
}

// IsText is true if the cell (e.g. 'Sheet1'!B2) has the literal text number format.
func (s *Store) IsText(spreadsheetID string, a1 string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	title, area, err := grid.ParseA1(a1)
	if err != nil {
		return false
	}

	ws, err := s.worksheet(spreadsheetID, title)
	if err != nil {
		return false
	}

	return ws.text[cell{col: area.Left, row: area.Top}]
}

func (s *Store) Sheets(ctx context.Context, spreadsheetID string) ([]bridge.Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.spreadsheet(spreadsheetID)
	if err != nil {
		return nil, err
	}

	list := []bridge.Sheet{}
	for i, ws := range e.sheets {
		sheet := ws.sheet
		sheet.Index = i
		list = append(list, sheet)
	}

	return list, nil
}

func (s *Store) Values(ctx context.Context, spreadsheetID string, a1 string) (grid.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title, area, err := grid.ParseA1(a1)
	if err != nil {
		return nil, err
	}

	ws, err := s.worksheet(spreadsheetID, title)
	if err != nil {
		return nil, err
	}

	if area.IsSheet() {
		cols, rows := ws.extent()
		if cols == 0 || rows == 0 {
			return grid.Grid{}, nil
		}

		area = grid.Area{Left: 1, Top: 1, Right: cols, Bottom: rows}
	}

	return ws.read(area), nil
}

func (s *Store) AddSheet(ctx context.Context, spreadsheetID string, title string) (*bridge.Sheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.spreadsheet(spreadsheetID)
	if err != nil {
		return nil, err
	}

	for _, ws := range e.sheets {
		if strings.EqualFold(ws.sheet.Title, title) {
			return nil, fmt.Errorf("a sheet with the name '%v' already exists", title)
		}
	}

	ws := newWorksheet(e.next, title, len(e.sheets))
	e.sheets = append(e.sheets, ws)
	e.next++

	sheet := ws.sheet

	return &sheet, nil
}

func (s *Store) Clear(ctx context.Context, spreadsheetID string, sheet bridge.Sheet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, err := s.sheet(spreadsheetID, sheet.ID)
	if err != nil {
		return err
	}

	ws.values = map[cell]any{}
	ws.text = map[cell]bool{}

	return nil
}

func (s *Store) Write(ctx context.Context, spreadsheetID string, a1 string, values grid.Grid, input bridge.ValueInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	title, area, err := grid.ParseA1(a1)
	if err != nil {
		return err
	}

	ws, err := s.worksheet(spreadsheetID, title)
	if err != nil {
		return err
	}

	if area.IsSheet() {
		area = grid.Area{Left: 1, Top: 1, Right: values.Cols(), Bottom: values.Rows()}
	}

	if values.Rows() > area.Rows() || values.Cols() > area.Cols() {
		return fmt.Errorf("%vx%v values exceed range %v", values.Rows(), values.Cols(), a1)
	}

	ws.write(area.Left, area.Top, values, input)

	return nil
}

func (s *Store) FormatText(ctx context.Context, spreadsheetID string, sheet bridge.Sheet, rows, cols int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, err := s.sheet(spreadsheetID, sheet.ID)
	if err != nil {
		return err
	}

	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			ws.text[cell{col: c, row: r}] = true
		}
	}

	return nil
}

func (s *Store) spreadsheet(id string) (*entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("spreadsheet %v %w", id, ErrNotFound)
	} else if e.file.MimeType != bridge.NativeSpreadsheet {
		return nil, fmt.Errorf("%v %w", e.file.Name, ErrNotSpreadsheet)
	}

	return e, nil
}

func (s *Store) worksheet(spreadsheetID string, title string) (*worksheet, error) {
	e, err := s.spreadsheet(spreadsheetID)
	if err != nil {
		return nil, err
	}

	for _, ws := range e.sheets {
		if ws.sheet.Title == title {
			return ws, nil
		}
	}

	return nil, fmt.Errorf("unable to parse range: sheet '%v' %w", title, ErrNotFound)
}

func (s *Store) sheet(spreadsheetID string, sheetID int64) (*worksheet, error) {
	e, err := s.spreadsheet(spreadsheetID)
	if err != nil {
		return nil, err
	}

	for _, ws := range e.sheets {
		if ws.sheet.ID == sheetID {
			return ws, nil
		}
	}

	return nil, fmt.Errorf("sheet %v %w", sheetID, ErrNotFound)
}

// infer parses user entered text the way a spreadsheet does: numbers and TRUE/FALSE become typed values.
func infer(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}

	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}

	if number.MatchString(strings.TrimSpace(s)) {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}

	return s
}
