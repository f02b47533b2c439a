package grid

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area is a 1-based, inclusive rectangle of cells. The zero value means 'the whole sheet'.
type Area struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

func (a Area) IsSheet() bool {
	return a == Area{}
}

func (a Area) Rows() int {
	return a.Bottom - a.Top + 1
}

func (a Area) Cols() int {
	return a.Right - a.Left + 1
}

// Quote returns the sheet title in the quoted form accepted by A1 notation e.g. 'Q1 ''24'.
func Quote(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

// Cell returns the A1 reference for a single 1-based cell of a sheet.
func Cell(title string, col, row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%v!%v", Quote(title), cell), nil
}

// Range returns the A1 reference for the rows x cols rectangle anchored at A1. An empty rectangle is the
// whole sheet.
func Range(title string, rows, cols int) (string, error) {
	if rows < 1 || cols < 1 {
		return Quote(title), nil
	}

	bottomRight, err := excelize.CoordinatesToCellName(cols, rows)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%v!A1:%v", Quote(title), bottomRight), nil
}

// ParseA1 splits an A1 reference ('Sheet'!B2:D4, Sheet!C3, 'Sheet') into the sheet title and area.
func ParseA1(a1 string) (string, Area, error) {
	title, cells, err := split(strings.TrimSpace(a1))
	if err != nil {
		return "", Area{}, err
	}

	if cells == "" {
		return title, Area{}, nil
	}

	from, to, found := strings.Cut(cells, ":")
	if !found {
		to = from
	}

	left, top, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return "", Area{}, err
	}

	right, bottom, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return "", Area{}, err
	}

	if right < left || bottom < top {
		return "", Area{}, fmt.Errorf("invalid range '%v'", a1)
	}

	return title, Area{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

func split(a1 string) (string, string, error) {
	if !strings.HasPrefix(a1, "'") {
		title, cells, _ := strings.Cut(a1, "!")
		return title, cells, nil
	}

	var title strings.Builder
	for i := 1; i < len(a1); i++ {
		if a1[i] != '\'' {
			title.WriteByte(a1[i])
			continue
		}

		if i+1 < len(a1) && a1[i+1] == '\'' {
			title.WriteByte('\'')
			i++
			continue
		}

		rest := a1[i+1:]
		switch {
		case rest == "":
			return title.String(), "", nil

		case strings.HasPrefix(rest, "!"):
			return title.String(), rest[1:], nil

		default:
			return "", "", fmt.Errorf("invalid range '%v'", a1)
		}
	}

	return "", "", fmt.Errorf("unterminated sheet name in '%v'", a1)
}
