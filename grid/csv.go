package grid

import (
	"bufio"
	"encoding/csv"
	"io"
)

const (
	CSV = ','
	TSV = '\t'
)

// ParseCSV parses delimited text with the standard quoting rules. Every value in the returned grid is a string.
// A leading UTF-8 byte order mark is discarded.
func ParseCSV(f io.Reader, comma rune) (Grid, error) {
	rd := bufio.NewReader(f)
	if ch, _, err := rd.ReadRune(); err == nil && ch != '\ufeff' {
		rd.UnreadRune()
	}

	r := csv.NewReader(rd)
	r.Comma = comma
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	return FromStrings(records), nil
}

func WriteCSV(f io.Writer, g Grid, comma rune) error {
	w := csv.NewWriter(f)
	w.Comma = comma

	for _, record := range g.Strings() {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
