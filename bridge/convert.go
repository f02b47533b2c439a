package bridge

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ConvertToNativeSheet creates a native spreadsheet with the same name as the source file and moves it to the
// destination folder. The move is an explicit step because the platform import does not guarantee placement.
// The source is trashed afterwards unless options.KeepSource is set.
//
// A failed move leaves the converted file wherever the import placed it.
func (b *Bridge) ConvertToNativeSheet(ctx context.Context, source *File, options ConvertOptions) (*File, error) {
	folderID := ""

	switch options.Destination.kind {
	case inFolder:
		if folderID = options.Destination.folderID; folderID == "" {
			return nil, fmt.Errorf("unable to convert %v to a spreadsheet (%w)", source.Name, ErrNoFolder)
		}

	case sourceFolder:
		if len(source.Parents) > 0 {
			folderID = source.Parents[0]
		} else {
			folderID = b.drive.Root()
		}
	}

	log := b.log.WithFields(logrus.Fields{
		"file":        source.ID,
		"name":        source.Name,
		"destination": options.Destination,
	})

	converted, err := b.drive.Import(ctx, source, source.Name, folderID)
	if err != nil {
		return nil, fmt.Errorf("unable to convert %v to a spreadsheet (%w)", source.Name, err)
	}

	log.WithField("spreadsheet", converted.ID).Info("converted file to spreadsheet")

	if folderID != "" {
		if converted, err = b.drive.Move(ctx, converted, folderID); err != nil {
			return nil, fmt.Errorf("unable to move spreadsheet %v to folder %v (%w)", source.Name, folderID, err)
		}

		log.WithField("folder", folderID).Debug("moved spreadsheet")
	}

	if !options.KeepSource {
		if err := b.drive.Trash(ctx, source.ID); err != nil {
			return nil, fmt.Errorf("unable to trash %v (%w)", source.Name, err)
		}

		log.Info("trashed source file")
	}

	return converted, nil
}
