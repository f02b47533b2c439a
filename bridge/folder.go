package bridge

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ResolveFolder returns the folder with the given name in the parent folder, creating it if it does not exist.
// An empty parentID is the drive root. If the parent holds more than one folder with the name, the last one in
// listing order is returned.
func (b *Bridge) ResolveFolder(ctx context.Context, name string, parentID string) (*Folder, error) {
	if parentID == "" {
		parentID = b.drive.Root()
	}

	log := b.log.WithFields(logrus.Fields{
		"name":   name,
		"parent": parentID,
	})

	var folder *Folder
	matches := 0

	for f, err := range b.drive.Folders(ctx, parentID, name) {
		if err != nil {
			return nil, fmt.Errorf("unable to list folders in %v (%w)", parentID, err)
		}

		folder = f
		matches++
	}

	if folder != nil {
		log.WithField("folder", folder.ID).Debugf("resolved folder (%v matches)", matches)
		return folder, nil
	}

	folder, err := b.drive.CreateFolder(ctx, parentID, name)
	if err != nil {
		return nil, fmt.Errorf("unable to create folder %v (%w)", name, err)
	}

	log.WithField("folder", folder.ID).Info("created folder")

	return folder, nil
}
