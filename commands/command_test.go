package commands

import (
	"reflect"
	"testing"

	"github.com/uhppoted/sheets-bridge/bridge"
)

func TestResolveID(t *testing.T) {
	tests := map[string]string{
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms":            "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0": "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"https://drive.google.com/file/d/1Hb6uVTVGkVvQ2S9JpOzRYwKJZTYHYQxq/view?usp=sharing":           "1Hb6uVTVGkVvQ2S9JpOzRYwKJZTYHYQxq",
		"https://drive.google.com/drive/folders/0B7Wq2bPzLx1cZ2VkYjN":                                 "0B7Wq2bPzLx1cZ2VkYjN",
		"https://drive.google.com/drive/u/1/folders/0B7Wq2bPzLx1cZ2VkYjN?resourcekey=abc":             "0B7Wq2bPzLx1cZ2VkYjN",
		"https://drive.google.com/open?id=1Hb6uVTVGkVvQ2S9JpOzRYwKJZTYHYQxq&authuser=0":               "1Hb6uVTVGkVvQ2S9JpOzRYwKJZTYHYQxq",
		"  1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms  ":                                            "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"root": "root",
	}

	for v, expected := range tests {
		id, err := resolveID(v)
		if err != nil {
			t.Fatalf("Unexpected error resolving '%v' (%v)", v, err)
		}

		if id != expected {
			t.Errorf("Incorrect ID for '%v'\n   expected: %v\n   got:      %v", v, expected, id)
		}
	}
}

func TestResolveIDWithInvalidValue(t *testing.T) {
	tests := []string{
		"https://example.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
		"ACL 2024.xlsx",
		"",
	}

	for _, v := range tests {
		if _, err := resolveID(v); err == nil {
			t.Errorf("Expected error resolving '%v'", v)
		}
	}
}

func TestRequired(t *testing.T) {
	if _, err := required("spreadsheet", " "); err == nil || err.Error() != "--spreadsheet is a required option" {
		t.Errorf("Expected '--spreadsheet is a required option' error, got %v", err)
	}
}

func TestSheetRef(t *testing.T) {
	if ref := sheetRef("ACL", 3); !reflect.DeepEqual(ref, bridge.SheetNamed("ACL")) {
		t.Errorf("Incorrect sheet reference - expected:%+v, got:%+v", bridge.SheetNamed("ACL"), ref)
	}

	if ref := sheetRef("", 3); !reflect.DeepEqual(ref, bridge.SheetAt(3)) {
		t.Errorf("Incorrect sheet reference - expected:%+v, got:%+v", bridge.SheetAt(3), ref)
	}
}

func TestFlagSets(t *testing.T) {
	for _, c := range []Command{&VersionCmd, &AuthoriseCmd, &ConvertCmd, &ReadCellCmd, &LatestCmd, &FolderCmd, &FormatTextCmd, &GetCmd, &UpsertCmd, &PutCmd} {
		flagset := flagset(c)

		if c.Name() != "version" && flagset.Lookup("credentials") == nil {
			t.Errorf("'%v' is missing the --credentials option", c.Name())
		}
	}
}
