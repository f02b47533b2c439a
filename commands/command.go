package commands

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/uhppoted/sheets-bridge/bridge"
	"github.com/uhppoted/sheets-bridge/gdrive"
)

const APP = "sheets-bridge"

var SCOPES = []string{
	drive.DriveScope,
	sheets.SpreadsheetsScope,
}

var (
	spreadsheetURL = regexp.MustCompile(`^https://docs\.google\.com/spreadsheets/d/([^/?#]+)`)
	fileURL        = regexp.MustCompile(`^https://drive\.google\.com/file/d/([^/?#]+)`)
	folderURL      = regexp.MustCompile(`^https://drive\.google\.com/drive/(?:u/[0-9]+/)?folders/([^/?#]+)`)
	openURL        = regexp.MustCompile(`^https://drive\.google\.com/open\?id=([^&#]+)`)
	rawID          = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

type Options struct {
	Debug bool
}

// Command is implemented by each of the sheets-bridge CLI commands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	Flags(flagset *pflag.FlagSet)
	Execute(ctx context.Context, options *Options) error
}

// command holds the options common to every command that connects to Google Drive.
type command struct {
	workdir     string
	credentials string
}

func (c *command) flags(flagset *pflag.FlagSet) {
	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the 'credentials.json' file")
}

func (c *command) connect(ctx context.Context) (*bridge.Bridge, error) {
	if strings.TrimSpace(c.credentials) == "" {
		return nil, fmt.Errorf("--credentials is a required option")
	}

	client, err := authorize(c.credentials, c.workdir, SCOPES...)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	d, err := gdrive.NewDrive(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	s, err := gdrive.NewSheets(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	return bridge.New(d, s, logrus.StandardLogger()), nil
}

// fetch resolves a file ID or URL option and retrieves the file metadata.
func fetch(ctx context.Context, b *bridge.Bridge, flag string, v string) (*bridge.File, error) {
	id, err := required(flag, v)
	if err != nil {
		return nil, err
	}

	file, err := b.Drive().File(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve file %v (%w)", id, err)
	}

	return file, nil
}

// required returns the ID for a mandatory --<flag> ID/URL option.
func required(flag string, v string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", fmt.Errorf("--%v is a required option", flag)
	}

	id, err := resolveID(v)
	if err != nil {
		return "", fmt.Errorf("invalid --%v (%w)", flag, err)
	}

	return id, nil
}

// resolveID extracts the file, folder or spreadsheet ID from a Google Drive/Sheets URL. Anything that looks like an
// ID is returned as is.
func resolveID(v string) (string, error) {
	v = strings.TrimSpace(v)

	for _, re := range []*regexp.Regexp{spreadsheetURL, fileURL, folderURL, openURL} {
		if match := re.FindStringSubmatch(v); len(match) > 1 {
			return match[1], nil
		}
	}

	if rawID.MatchString(v) {
		return v, nil
	}

	return "", fmt.Errorf("'%v' is not a Google Drive ID or URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", v)
}

func sheetRef(name string, index int) bridge.SheetRef {
	if name != "" {
		return bridge.SheetNamed(name)
	}

	return bridge.SheetAt(index)
}

func flagset(c Command) *pflag.FlagSet {
	flagset := pflag.NewFlagSet(c.Name(), pflag.ContinueOnError)
	c.Flags(flagset)

	return flagset
}

func helpOptions(flagset *pflag.FlagSet) {
	if flagset.HasFlags() {
		fmt.Println("  Options:")
		flagset.VisitAll(func(f *pflag.Flag) {
			fmt.Printf("    --%-16s %s\n", f.Name, f.Usage)
		})
		fmt.Println()
	}

	fmt.Println("    --debug            Displays internal information for diagnosing errors")
}

func debugf(format string, args ...any) {
	logrus.WithField("app", APP).Debugf(format, args...)
}

func infof(format string, args ...any) {
	logrus.WithField("app", APP).Infof(format, args...)
}

func warnf(format string, args ...any) {
	logrus.WithField("app", APP).Warnf(format, args...)
}
