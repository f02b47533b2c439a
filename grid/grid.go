// Package grid implements the in-memory 2-D value grid exchanged between spreadsheets and data files, along
// with the CSV/TSV and XLSX encodings and the A1 range notation used to address it.
package grid

import (
	"fmt"
	"strconv"
)

// Grid is an ordered rows x columns table of cell values. Rows may be ragged, the effective width is the
// width of the widest row.
type Grid [][]any

func FromStrings(records [][]string) Grid {
	g := make(Grid, 0, len(records))
	for _, record := range records {
		row := make([]any, len(record))
		for i, v := range record {
			row[i] = v
		}

		g = append(g, row)
	}

	return g
}

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	cols := 0
	for _, row := range g {
		if len(row) > cols {
			cols = len(row)
		}
	}

	return cols
}

// Empty is true if the grid has no addressable cells.
func (g Grid) Empty() bool {
	return g.Rows() == 0 || g.Cols() == 0
}

// Format renders a cell value as text. Numbers are rendered in plain decimal notation so that large integral
// values (e.g. card numbers) do not acquire an exponent.
func Format(v any) string {
	switch n := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// Strings renders every cell with Format. Missing and nil cells are rendered as "" and
// every row is padded to the grid width.
func (g Grid) Strings() [][]string {
	cols := g.Cols()
	records := make([][]string, 0, len(g))

	for _, row := range g {
		record := make([]string, cols)
		for i, v := range row {
			record[i] = Format(v)
		}

		records = append(records, record)
	}

	return records
}
