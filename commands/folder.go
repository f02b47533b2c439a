package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var FolderCmd = Folder{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
	},
}

type Folder struct {
	command
	name   string
	parent string
}

func (cmd *Folder) Name() string {
	return "folder"
}

func (cmd *Folder) Description() string {
	return "Finds or creates a Google Drive folder"
}

func (cmd *Folder) Usage() string {
	return "--name <name> [--parent <folder>]"
}

func (cmd *Folder) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] folder [options] --name <name>\n", APP)
	fmt.Println()
	fmt.Println("  Prints the ID of the named folder in the parent folder (defaults to 'My Drive'), creating the")
	fmt.Println("  folder if it does not exist.")
	fmt.Println()

	helpOptions(flagset(cmd))

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    sheets-bridge folder --name "ACL archive"`)
	fmt.Println()
}

func (cmd *Folder) Flags(flagset *pflag.FlagSet) {
	cmd.flags(flagset)

	flagset.StringVar(&cmd.name, "name", cmd.name, "Folder name")
	flagset.StringVar(&cmd.parent, "parent", cmd.parent, "ID or URL of the parent folder")
}

func (cmd *Folder) Execute(ctx context.Context, options *Options) error {
	if strings.TrimSpace(cmd.name) == "" {
		return fmt.Errorf("--name is a required option")
	}

	parent := ""
	if cmd.parent != "" {
		id, err := resolveID(cmd.parent)
		if err != nil {
			return fmt.Errorf("invalid --parent (%w)", err)
		}

		parent = id
	}

	b, err := cmd.connect(ctx)
	if err != nil {
		return err
	}

	folder, err := b.ResolveFolder(ctx, cmd.name, parent)
	if err != nil {
		return err
	}

	fmt.Println(folder.ID)

	return nil
}
