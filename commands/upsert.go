package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/uhppoted/sheets-bridge/bridge"
)

var UpsertCmd = Upsert{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
	},
}

type Upsert struct {
	command
	spreadsheet string
	file        string
	sheet       string
	index       int
	target      string
	inferTypes  bool
	deleteFile  bool
}

func (cmd *Upsert) Name() string {
	return "upsert"
}

func (cmd *Upsert) Description() string {
	return "Replaces a Google Sheets worksheet with the data in a Google Drive file"
}

func (cmd *Upsert) Usage() string {
	return "--spreadsheet <spreadsheet> --file <file> [--target <sheet>]"
}

func (cmd *Upsert) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] upsert [options] --spreadsheet <spreadsheet> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Replaces the contents of a worksheet with the tabular data extracted from a spreadsheet, CSV, TSV")
	fmt.Println("  or Excel file, creating the worksheet if it does not exist. The worksheet is named after the file")
	fmt.Println("  (less extension) unless --target is given. Values are stored as plain text unless --infer-types")
	fmt.Println("  is given.")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge upsert --spreadsheet "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                         --file "https://drive.google.com/file/d/1Hb6uVTVGkVvQ2S9JpOzRYwKJZTYHYQxq" \`)
	fmt.Println(`                         --target "ACL"`)
	fmt.Println()
}

func (cmd *Upsert) Flags(flagset *pflag.FlagSet) {
	cmd.flags(flagset)

	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, "ID or URL of the destination spreadsheet")
	flagset.StringVar(&cmd.file, "file", cmd.file, "ID or URL of the data file")
	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Data file worksheet name (spreadsheets and Excel files only)")
	flagset.IntVar(&cmd.index, "index", cmd.index, "Data file worksheet index (if --sheet is not given)")
	flagset.StringVar(&cmd.target, "target", cmd.target, "Destination worksheet name. Defaults to the data file name")
	flagset.BoolVar(&cmd.inferTypes, "infer-types", cmd.inferTypes, "Stores values as if typed, converting numbers, dates, etc")
	flagset.BoolVar(&cmd.deleteFile, "delete-data-file", cmd.deleteFile, "Moves the data file to the trash once uploaded")
}

func (cmd *Upsert) Execute(ctx context.Context, options *Options) error {
	spreadsheet, err := required("spreadsheet", cmd.spreadsheet)
	if err != nil {
		return err
	}

	b, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	data, err := fetch(ctx, b, "file", cmd.file)
	if err != nil {
		return err
	}

	upsert := bridge.UpsertOptions{
		Source:         sheetRef(cmd.sheet, cmd.index),
		Target:         cmd.target,
		InferTypes:     cmd.inferTypes,
		DeleteDataFile: cmd.deleteFile,
	}

	sheet, err := b.UpsertSheet(ctx, spreadsheet, data, upsert)
	if err != nil {
		return err
	}

	infof("uploaded %v to worksheet '%v'", data.Name, sheet.Title)

	return nil
}
