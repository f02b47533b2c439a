package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/uhppoted/sheets-bridge/grid"
)

var GetCmd = Get{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
	},
	out: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	file  string
	sheet string
	index int
	out   string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Extracts the tabular data from a Google Drive file and stores it to a local file"
}

func (cmd *Get) Usage() string {
	return "--file <file> --out <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --file <file> --out <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the tabular data in a spreadsheet, CSV, TSV or Excel file to a local TSV, CSV or XLSX")
	fmt.Println("  file. The local file format is determined by the --out file extension (defaults to TSV).")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge --debug get --credentials "credentials.json" \`)
	fmt.Println(`                              --file "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                              --sheet "ACL" \`)
	fmt.Println(`                              --out "acl.tsv"`)
	fmt.Println()
}

func (cmd *Get) Flags(flagset *pflag.FlagSet) {
	cmd.flags(flagset)

	flagset.StringVar(&cmd.file, "file", cmd.file, "ID or URL of the spreadsheet or data file")
	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Worksheet name (spreadsheets and Excel files only)")
	flagset.IntVar(&cmd.index, "index", cmd.index, "Worksheet index (if --sheet is not given)")
	flagset.StringVar(&cmd.out, "out", cmd.out, "Local file. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")
}

func (cmd *Get) Execute(ctx context.Context, options *Options) error {
	if strings.TrimSpace(cmd.out) == "" {
		return fmt.Errorf("--out is a required option")
	}

	b, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	source, err := fetch(ctx, b, "file", cmd.file)
	if err != nil {
		return err
	}

	debugf("extracting %v (%v)", source.Name, source.ID)

	g, err := b.ExtractTabularData(ctx, source, sheetRef(cmd.sheet, cmd.index))
	if err != nil {
		return err
	}

	if g.Empty() {
		warnf("no data in %v", source.Name)
	}

	title := cmd.sheet
	if title == "" {
		title = "Sheet1"
	}

	if err := store(cmd.out, title, g); err != nil {
		return err
	}

	infof("retrieved %v rows from %v to file %s", g.Rows(), source.Name, cmd.out)

	return nil
}

// store writes the grid to a temporary file and then renames it to the named file so that an existing file is
// only replaced by a complete file.
func store(file string, title string, g grid.Grid) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".sheets-bridge-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx":
		err = grid.WriteXLSX(tmp, title, g)
	case ".csv":
		err = grid.WriteCSV(tmp, g, grid.CSV)
	default:
		err = grid.WriteCSV(tmp, g, grid.TSV)
	}

	if err != nil {
		return fmt.Errorf("error creating %v (%w)", file, err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}
