package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
)

var FormatTextCmd = FormatText{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
	},
}

type FormatText struct {
	command
	spreadsheet string
	sheet       string
	index       int
}

func (cmd *FormatText) Name() string {
	return "format-text"
}

func (cmd *FormatText) Description() string {
	return "Formats the data range of a Google Sheets worksheet as plain text"
}

func (cmd *FormatText) Usage() string {
	return "--spreadsheet <spreadsheet> [--sheet <sheet> | --index <index>]"
}

func (cmd *FormatText) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] format-text [options] --spreadsheet <spreadsheet> --sheet <sheet>\n", APP)
	fmt.Println()
	fmt.Println("  Sets the number format of the cells in the worksheet data range to plain text. The worksheet is")
	fmt.Println("  selected by name or, if --sheet is not given, by zero based index.")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge format-text --spreadsheet "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --sheet "ACL"`)
	fmt.Println()
}

func (cmd *FormatText) Flags(flagset *pflag.FlagSet) {
	cmd.flags(flagset)

	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, "ID or URL of the spreadsheet")
	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Worksheet name")
	flagset.IntVar(&cmd.index, "index", cmd.index, "Worksheet index (if --sheet is not given)")
}

func (cmd *FormatText) Execute(ctx context.Context, options *Options) error {
	spreadsheet, err := required("spreadsheet", cmd.spreadsheet)
	if err != nil {
		return err
	}

	b, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	if err := b.FormatAsText(ctx, spreadsheet, sheetRef(cmd.sheet, cmd.index)); err != nil {
		return err
	}

	infof("formatted %v as text", spreadsheet)

	return nil
}
