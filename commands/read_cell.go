package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var ReadCellCmd = ReadCell{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
	},
}

type ReadCell struct {
	command
	spreadsheet string
	sheet       string
	cell        string
}

func (cmd *ReadCell) Name() string {
	return "read-cell"
}

func (cmd *ReadCell) Description() string {
	return "Prints the value of a single cell of a Google Sheets worksheet"
}

func (cmd *ReadCell) Usage() string {
	return "--spreadsheet <spreadsheet> --sheet <sheet> --cell <cell>"
}

func (cmd *ReadCell) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] read-cell [options] --spreadsheet <spreadsheet> --sheet <sheet> --cell <cell>\n", APP)
	fmt.Println()
	fmt.Println("  Prints the value of a cell, or an empty line if the cell is empty")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge read-cell --spreadsheet "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" --sheet "ACL" --cell "B2"`)
	fmt.Println()
}

func (cmd *ReadCell) Flags(flagset *pflag.FlagSet) {
	cmd.flags(flagset)

	flagset.StringVar(&cmd.spreadsheet, "spreadsheet", cmd.spreadsheet, "ID or URL of the spreadsheet")
	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Worksheet name")
	flagset.StringVar(&cmd.cell, "cell", cmd.cell, "Cell address e.g. B2")
}

func (cmd *ReadCell) Execute(ctx context.Context, options *Options) error {
	spreadsheet, err := required("spreadsheet", cmd.spreadsheet)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.sheet) == "" {
		return fmt.Errorf("--sheet is a required option")
	}

	if strings.TrimSpace(cmd.cell) == "" {
		return fmt.Errorf("--cell is a required option")
	}

	b, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	value, err := b.ReadCell(ctx, spreadsheet, cmd.sheet, strings.TrimSpace(cmd.cell))
	if err != nil {
		return err
	}

	fmt.Println(value)

	return nil
}
