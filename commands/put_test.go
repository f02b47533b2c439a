package commands

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/uhppoted/sheets-bridge/grid"
)

func TestLoadTSV(t *testing.T) {
	expected := grid.Grid{
		{"Card Number", "From", "To", "Gate"},
		{"6001001", "2020-01-01", "2020-12-31", "Y"},
	}

	file := filepath.Join(t.TempDir(), "acl.tsv")
	if err := os.WriteFile(file, []byte("Card Number\tFrom\tTo\tGate\n6001001\t2020-01-01\t2020-12-31\tY\n"), 0600); err != nil {
		t.Fatalf("Error creating TSV file (%v)", err)
	}

	g, err := load(file, "", 0)
	if err != nil {
		t.Fatalf("Unexpected error loading TSV file (%v)", err)
	}

	if !reflect.DeepEqual(g, expected) {
		t.Errorf("Incorrect grid\n   expected: %v\n   got:      %v", expected, g)
	}
}

func TestLoadCSV(t *testing.T) {
	expected := grid.Grid{
		{"Door", "Mode"},
		{"Gate, north", "controlled"},
	}

	file := filepath.Join(t.TempDir(), "doors.CSV")
	if err := os.WriteFile(file, []byte("Door,Mode\n\"Gate, north\",controlled\n"), 0600); err != nil {
		t.Fatalf("Error creating CSV file (%v)", err)
	}

	g, err := load(file, "", 0)
	if err != nil {
		t.Fatalf("Unexpected error loading CSV file (%v)", err)
	}

	if !reflect.DeepEqual(g, expected) {
		t.Errorf("Incorrect grid\n   expected: %v\n   got:      %v", expected, g)
	}
}

func TestStoreAndLoadXLSX(t *testing.T) {
	expected := grid.Grid{
		{"Card Number", "PIN"},
		{"6001001", "0007"},
	}

	file := filepath.Join(t.TempDir(), "out", "acl.xlsx")
	if err := store(file, "ACL", expected); err != nil {
		t.Fatalf("Unexpected error storing XLSX file (%v)", err)
	}

	g, err := load(file, "ACL", 0)
	if err != nil {
		t.Fatalf("Unexpected error loading XLSX file (%v)", err)
	}

	if !reflect.DeepEqual(g, expected) {
		t.Errorf("Incorrect grid\n   expected: %v\n   got:      %v", expected, g)
	}
}

func TestStoreReplacesFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "acl.tsv")

	if err := os.WriteFile(file, []byte("stale\n"), 0600); err != nil {
		t.Fatalf("Error creating TSV file (%v)", err)
	}

	if err := store(file, "", grid.Grid{{"Card Number", "PIN"}, {float64(6001001), nil}}); err != nil {
		t.Fatalf("Unexpected error storing TSV file (%v)", err)
	}

	b, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Error reading TSV file (%v)", err)
	}

	if string(b) != "Card Number\tPIN\n6001001\t\n" {
		t.Errorf("Incorrect TSV file\n   expected: %q\n   got:      %q", "Card Number\tPIN\n6001001\t\n", string(b))
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Temporary file not removed (%v files in %v)", len(entries), dir)
	}
}
