package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/uhppoted/sheets-bridge/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.AuthoriseCmd,
	&commands.ConvertCmd,
	&commands.ReadCellCmd,
	&commands.LatestCmd,
	&commands.FolderCmd,
	&commands.FormatTextCmd,
	&commands.GetCmd,
	&commands.UpsertCmd,
	&commands.PutCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	root := &cobra.Command{
		Use:           commands.APP,
		Short:         "Moves tabular data between Google Drive files and Google Sheets worksheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if options.Debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")

	for _, c := range cli {
		root.AddCommand(wrap(c))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)

	cancel()

	if err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}

func wrap(c commands.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   strings.TrimSpace(c.Name() + " " + c.Usage()),
		Short: c.Description(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Execute(cmd.Context(), &options)
		},
	}

	c.Flags(cmd.Flags())

	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		c.Help()
	})

	return cmd
}
