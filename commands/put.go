package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/uhppoted/sheets-bridge/grid"
)

var PutCmd = Put{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
	},
}

type Put struct {
	command
	spreadsheet string
	file        string
	sheet       string
	index       int
	target      string
	inferTypes  bool
}

func (cmd *Put) Name() string {
	return "put"
}

func (cmd *Put) Description() string {
	return "Uploads a local TSV, CSV or Excel file to a Google Sheets worksheet"
}

func (cmd *Put) Usage() string {
	return "--spreadsheet <spreadsheet> --file <file> [--target <sheet>]"
}

func (cmd *Put) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] put [options] --spreadsheet <spreadsheet> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the contents of a worksheet with a local TSV, CSV or Excel file, creating the worksheet")
	fmt.Println("  if it does not exist. The worksheet is named after the file (less extension) unless --target is")
	fmt.Println("  given.")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge --debug put --credentials "credentials.json" \`)
	fmt.Println(`                              --spreadsheet "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                              --target "ACL" \`)
	fmt.Println(`                              --file "example.tsv"`)
	fmt.Println()
}

func (cmd *Put) Flags(flagset *pflag.FlagSet) {
	cmd.flags(flagset)

	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, "ID or URL of the destination spreadsheet")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV, CSV or XLSX file")
	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Worksheet name (XLSX files only)")
	flagset.IntVar(&cmd.index, "index", cmd.index, "Worksheet index (if --sheet is not given)")
	flagset.StringVar(&cmd.target, "target", cmd.target, "Destination worksheet name. Defaults to the file name")
	flagset.BoolVar(&cmd.inferTypes, "infer-types", cmd.inferTypes, "Stores values as if typed, converting numbers, dates, etc")
}

func (cmd *Put) Execute(ctx context.Context, options *Options) error {
	spreadsheet, err := required("spreadsheet", cmd.spreadsheet)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	g, err := load(cmd.file, cmd.sheet, cmd.index)
	if err != nil {
		return err
	}

	title := cmd.target
	if title == "" {
		base := filepath.Base(cmd.file)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	b, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	if _, err := b.ReplaceSheet(ctx, spreadsheet, title, g, cmd.inferTypes); err != nil {
		return err
	}

	infof("uploaded %v to worksheet '%v'", cmd.file, title)

	return nil
}

// load reads a local TSV, CSV or Excel file as a grid. Files with an unrecognised extension are read as TSV.
func load(file string, sheet string, index int) (grid.Grid, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".xlsx", ".xlsm":
		return grid.ReadXLSX(f, sheet, index)
	case ".csv":
		return grid.ParseCSV(f, grid.CSV)
	default:
		return grid.ParseCSV(f, grid.TSV)
	}
}
