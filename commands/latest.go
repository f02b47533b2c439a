package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/uhppoted/sheets-bridge/bridge"
)

var LatestCmd = Latest{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
	},
	selector: "name",
}

type Latest struct {
	command
	folder   string
	selector string
}

func (cmd *Latest) Name() string {
	return "latest"
}

func (cmd *Latest) Description() string {
	return "Prints the most recently modified file in a Google Drive folder"
}

func (cmd *Latest) Usage() string {
	return "--folder <folder> [--select name|id|file]"
}

func (cmd *Latest) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] latest [options] --folder <folder>\n", APP)
	fmt.Println()
	fmt.Println("  Prints the name, ID or details (ID, name and modified time) of the most recently modified file in")
	fmt.Println("  a folder. Prints nothing if the folder has no files.")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge latest --folder "https://drive.google.com/drive/folders/1Hb6uVTVGkVvQ2S9JpOzRYwKJZTYHYQxq" --select id`)
	fmt.Println()
}

func (cmd *Latest) Flags(flagset *pflag.FlagSet) {
	cmd.flags(flagset)

	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "ID or URL of the folder")
	flagset.StringVar(&cmd.selector, "select", cmd.selector, "What to print: name, id or file")
}

func (cmd *Latest) Execute(ctx context.Context, options *Options) error {
	folder, err := required("folder", cmd.folder)
	if err != nil {
		return err
	}

	selector := bridge.ParseSelector(cmd.selector)

	b, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	pick, err := bridge.PickLatestFile(b.Drive().Files(ctx, folder), selector)
	if err != nil {
		return err
	}

	if pick == nil {
		warnf("no files in folder %v", folder)
		return nil
	}

	if selector == bridge.SelectFile {
		fmt.Printf("%v\t%v\t%v\n", pick.File.ID, pick.File.Name, pick.File.Modified.Format(time.RFC3339))
	} else {
		fmt.Println(pick.Value)
	}

	return nil
}
