package bridge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uhppoted/sheets-bridge/bridge"
	"github.com/uhppoted/sheets-bridge/grid"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		file     bridge.File
		expected bridge.Kind
	}{
		{bridge.File{Name: "ACL", MimeType: bridge.NativeSpreadsheet}, bridge.KindNative},
		{bridge.File{Name: "ACL", MimeType: "text/csv"}, bridge.KindCSV},
		{bridge.File{Name: "acl.CSV", MimeType: "application/octet-stream"}, bridge.KindCSV},
		{bridge.File{Name: "acl.tsv"}, bridge.KindTSV},
		{bridge.File{Name: "ACL", MimeType: XLSX}, bridge.KindWorkbook},
		{bridge.File{Name: "acl.xls"}, bridge.KindWorkbook},
		{bridge.File{Name: "acl.pdf", MimeType: "application/pdf"}, bridge.KindUnknown},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, bridge.Classify(&test.file), "%v (%v)", test.file.Name, test.file.MimeType)
	}
}

func TestExtractTabularDataFromCSV(t *testing.T) {
	b, store := setup(t)

	f := store.AddFile("", "data.csv", "text/csv", []byte("a,b\n1,2"))

	g, err := b.ExtractTabularData(context.Background(), f, bridge.SheetRef{})
	require.NoError(t, err)

	assert.Equal(t, grid.Grid{{"a", "b"}, {"1", "2"}}, g)
}

func TestExtractTabularDataFromSpreadsheet(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	spreadsheet := store.AddSpreadsheet("", "ACL", "Summary", "Cards")
	require.NoError(t, store.Write(ctx, spreadsheet.ID, "'Cards'!A1:B2", grid.Grid{
		{"Card Number", "Active"},
		{float64(6001001), true},
	}, bridge.InputRaw))

	expected := grid.Grid{{"Card Number", "Active"}, {float64(6001001), true}}

	g, err := b.ExtractTabularData(ctx, spreadsheet, bridge.SheetNamed("Cards"))
	require.NoError(t, err)
	assert.Equal(t, expected, g)

	g, err = b.ExtractTabularData(ctx, spreadsheet, bridge.SheetAt(1))
	require.NoError(t, err)
	assert.Equal(t, expected, g)

	g, err = b.ExtractTabularData(ctx, spreadsheet, bridge.SheetRef{})
	require.NoError(t, err)
	assert.Empty(t, g)
}

func TestExtractTabularDataFromWorkbook(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	f := store.AddFile("", "doors.xlsx", XLSX, workbook(t, "Doors", grid.Grid{
		{"Door", "Delay"},
		{"Gate", "7"},
	}))

	g, err := b.ExtractTabularData(ctx, f, bridge.SheetRef{})
	require.NoError(t, err)
	assert.Equal(t, grid.Grid{{"Door", "Delay"}, {"Gate", float64(7)}}, g)

	files := []*bridge.File{}
	for file, err := range store.Files(ctx, store.Root()) {
		require.NoError(t, err)
		files = append(files, file)
	}

	require.Len(t, files, 1, "scratch spreadsheet not deleted")
	assert.Equal(t, f.ID, files[0].ID)
	assert.False(t, files[0].Trashed)
}

func TestExtractTabularDataFromWorkbookWithMissingSheet(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	f := store.AddFile("", "doors.xlsx", XLSX, workbook(t, "Doors", grid.Grid{{"Door"}}))

	_, err := b.ExtractTabularData(ctx, f, bridge.SheetNamed("Cards"))
	require.ErrorIs(t, err, bridge.ErrSheetNotFound)

	count := 0
	for _, err := range store.Files(ctx, store.Root()) {
		require.NoError(t, err)
		count++
	}

	assert.Equal(t, 1, count, "scratch spreadsheet not deleted after failed read")
}

func TestExtractTabularDataFromUnsupportedFile(t *testing.T) {
	b, store := setup(t)

	f := store.AddFile("", "acl.pdf", "application/pdf", []byte("%PDF-1.4"))

	_, err := b.ExtractTabularData(context.Background(), f, bridge.SheetRef{})
	assert.ErrorIs(t, err, bridge.ErrUnsupportedType)
}

func TestUpsertSheetCreatesSheet(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	destination := store.AddSpreadsheet("", "ACL")
	data := store.AddFile("", "cards.2024.csv", "text/csv", []byte("Card Number,PIN\n6001001,007\n"))

	sheet, err := b.UpsertSheet(ctx, destination.ID, data, bridge.UpsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, "cards.2024", sheet.Title)

	assert.Equal(t, grid.Grid{{"Card Number", "PIN"}, {"6001001", "007"}}, values(t, store, destination.ID, "'cards.2024'"))
	assert.True(t, store.IsText(destination.ID, "'cards.2024'!B2"))

	original, err := store.File(ctx, data.ID)
	require.NoError(t, err)
	assert.False(t, original.Trashed, "data file trashed")
}

func TestUpsertSheetWithTitleCaseMismatch(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	destination := store.AddSpreadsheet("", "ACL", "cards")
	data := store.AddFile("", "Cards.csv", "text/csv", []byte("Card Number\n6001001\n"))

	existing, err := store.Sheets(ctx, destination.ID)
	require.NoError(t, err)

	sheet, err := b.UpsertSheet(ctx, destination.ID, data, bridge.UpsertOptions{})
	require.NoError(t, err)

	assert.Equal(t, existing[0].ID, sheet.ID)
	assert.Equal(t, "cards", sheet.Title)
	assert.Equal(t, grid.Grid{{"Card Number"}, {"6001001"}}, values(t, store, destination.ID, "'cards'"))

	sheets, err := store.Sheets(ctx, destination.ID)
	require.NoError(t, err)
	assert.Len(t, sheets, 1)
}

func TestUpsertSheetPrefersExactTitle(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	destination := store.AddSpreadsheet("", "ACL", "Summary", "Cards")
	data := store.AddFile("", "data.csv", "text/csv", []byte("x\n1\n"))

	sheet, err := b.UpsertSheet(ctx, destination.ID, data, bridge.UpsertOptions{Target: "Cards"})
	require.NoError(t, err)

	assert.Equal(t, "Cards", sheet.Title)
	assert.Equal(t, grid.Grid{{"x"}, {"1"}}, values(t, store, destination.ID, "'Cards'"))
}

func TestUpsertSheetWithExtensionOnlyName(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	destination := store.AddSpreadsheet("", "ACL")
	data := store.AddFile("", ".csv", "text/csv", []byte("a\n1\n"))

	sheet, err := b.UpsertSheet(ctx, destination.ID, data, bridge.UpsertOptions{})
	require.NoError(t, err)

	assert.Equal(t, ".csv", sheet.Title)
	assert.Equal(t, grid.Grid{{"a"}, {"1"}}, values(t, store, destination.ID, "'.csv'"))
}

func TestUpsertSheetReplacesContent(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	destination := store.AddSpreadsheet("", "ACL")
	first := store.AddFile("", "first.csv", "text/csv", []byte("a,b,c\n1,2,3\n4,5,6\n"))
	second := store.AddFile("", "second.csv", "text/csv", []byte("x\n9\n"))

	options := bridge.UpsertOptions{Target: "Cards"}

	created, err := b.UpsertSheet(ctx, destination.ID, first, options)
	require.NoError(t, err)

	replaced, err := b.UpsertSheet(ctx, destination.ID, second, options)
	require.NoError(t, err)

	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, grid.Grid{{"x"}, {"9"}}, values(t, store, destination.ID, "'Cards'"))
	assert.False(t, store.IsText(destination.ID, "'Cards'!C3"), "formatting not cleared")

	sheets, err := store.Sheets(ctx, destination.ID)
	require.NoError(t, err)
	assert.Len(t, sheets, 2)
}

func TestUpsertSheetWithInferredTypes(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	destination := store.AddSpreadsheet("", "ACL")
	data := store.AddFile("", "cards.csv", "text/csv", []byte("PIN,Active\n007,TRUE\n"))

	_, err := b.UpsertSheet(ctx, destination.ID, data, bridge.UpsertOptions{InferTypes: true})
	require.NoError(t, err)

	assert.Equal(t, grid.Grid{{"PIN", "Active"}, {float64(7), true}}, values(t, store, destination.ID, "'cards'"))
	assert.False(t, store.IsText(destination.ID, "'cards'!A2"))
}

func TestUpsertSheetFromWorkbookSheet(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	destination := store.AddSpreadsheet("", "ACL")
	data := store.AddFile("", "doors.xlsx", XLSX, workbook(t, "Doors", grid.Grid{{"Door"}, {"Gate"}}))

	sheet, err := b.UpsertSheet(ctx, destination.ID, data, bridge.UpsertOptions{
		Source:         bridge.SheetNamed("Doors"),
		Target:         "Imported",
		DeleteDataFile: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Imported", sheet.Title)
	assert.Equal(t, grid.Grid{{"Door"}, {"Gate"}}, values(t, store, destination.ID, "'Imported'"))

	original, err := store.File(ctx, data.ID)
	require.NoError(t, err)
	assert.True(t, original.Trashed, "data file not trashed")
}

func TestUpsertSheetWithEmptyData(t *testing.T) {
	b, store := setup(t)
	ctx := context.Background()

	destination := store.AddSpreadsheet("", "ACL")
	require.NoError(t, store.Write(ctx, destination.ID, "'Sheet1'!A1", grid.Grid{{"stale"}}, bridge.InputRaw))

	data := store.AddFile("", "Sheet1.csv", "text/csv", []byte{})

	sheet, err := b.UpsertSheet(ctx, destination.ID, data, bridge.UpsertOptions{})
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", sheet.Title)
	assert.Empty(t, values(t, store, destination.ID, "'Sheet1'"))
}
