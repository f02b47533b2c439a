package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/uhppoted/sheets-bridge/bridge"
)

var ConvertCmd = Convert{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
	},
}

type Convert struct {
	command
	file    string
	folder  string
	scratch bool
	keep    bool
}

func (cmd *Convert) Name() string {
	return "convert"
}

func (cmd *Convert) Description() string {
	return "Converts a CSV, TSV or Excel file in Google Drive to a Google Sheets spreadsheet"
}

func (cmd *Convert) Usage() string {
	return "--file <file>"
}

func (cmd *Convert) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] convert [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Converts a file to a Google Sheets spreadsheet with the same name, in the same folder as the file")
	fmt.Println("  unless --folder is given. The original file is moved to the trash unless --keep is given. Prints")
	fmt.Println("  the ID of the spreadsheet.")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge convert --credentials "credentials.json" --file "https://drive.google.com/file/d/1Hb6uVTVGkVvQ2S9JpOzRYwKJZTYHYQxq"`)
	fmt.Println()
}

func (cmd *Convert) Flags(flagset *pflag.FlagSet) {
	cmd.flags(flagset)

	flagset.StringVar(&cmd.file, "file", cmd.file, "ID or URL of the file to convert")
	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "ID or URL of the destination folder (defaults to the file's folder)")
	flagset.BoolVar(&cmd.scratch, "scratch", cmd.scratch, "Leaves the spreadsheet wherever Google Drive creates it")
	flagset.BoolVar(&cmd.keep, "keep", cmd.keep, "Keeps the original file")
}

func (cmd *Convert) Execute(ctx context.Context, options *Options) error {
	convert := bridge.DefaultConvertOptions()
	convert.KeepSource = cmd.keep

	switch {
	case cmd.folder != "" && cmd.scratch:
		return fmt.Errorf("--folder and --scratch are mutually exclusive")

	case cmd.folder != "":
		folderID, err := resolveID(cmd.folder)
		if err != nil {
			return fmt.Errorf("invalid --folder (%w)", err)
		}

		convert.Destination = bridge.InFolder(folderID)

	case cmd.scratch:
		convert.Destination = bridge.Scratch()
	}

	b, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	source, err := fetch(ctx, b, "file", cmd.file)
	if err != nil {
		return err
	}

	debugf("converting %v (%v) to %v", source.Name, source.ID, convert.Destination)

	converted, err := b.ConvertToNativeSheet(ctx, source, convert)
	if err != nil {
		return err
	}

	fmt.Println(converted.ID)

	return nil
}
