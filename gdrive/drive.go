// Package gdrive implements the bridge Drive and Spreadsheets interfaces over the Google Drive v3 and Google
// Sheets v4 APIs.
package gdrive

import (
	"context"
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/uhppoted/sheets-bridge/bridge"
)

const (
	fileFields googleapi.Field = "id,name,mimeType,parents,modifiedTime,trashed"
	listFields googleapi.Field = "nextPageToken,files(id,name,mimeType,parents,modifiedTime,trashed)"
)

var escaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

var _ bridge.Drive = (*Drive)(nil)

type Drive struct {
	service *drive.Service
}

func NewDrive(ctx context.Context, opts ...option.ClientOption) (*Drive, error) {
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create Google Drive client (%w)", err)
	}

	return &Drive{service: service}, nil
}

// Root returns the alias for the 'My Drive' folder.
func (d *Drive) Root() string {
	return "root"
}

func (d *Drive) File(ctx context.Context, fileID string) (*bridge.File, error) {
	f, err := d.service.Files.Get(fileID).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return toFile(f)
}

// Files lists the files (but not folders) in a folder, excluding trashed files.
func (d *Drive) Files(ctx context.Context, folderID string) iter.Seq2[*bridge.File, error] {
	q := fmt.Sprintf("'%v' in parents and mimeType != '%v' and trashed = false", escaper.Replace(folderID), bridge.NativeFolder)

	return func(yield func(*bridge.File, error) bool) {
		for f, err := range d.list(ctx, q) {
			if err != nil {
				yield(nil, err)
				return
			}

			file, err := toFile(f)
			if !yield(file, err) || err != nil {
				return
			}
		}
	}
}

// Folders lists the folders with the exact name in the parent folder, excluding trashed folders.
func (d *Drive) Folders(ctx context.Context, parentID string, name string) iter.Seq2[*bridge.Folder, error] {
	q := fmt.Sprintf("'%v' in parents and name = '%v' and mimeType = '%v' and trashed = false",
		escaper.Replace(parentID),
		escaper.Replace(name),
		bridge.NativeFolder)

	return func(yield func(*bridge.Folder, error) bool) {
		for f, err := range d.list(ctx, q) {
			if err != nil {
				yield(nil, err)
				return
			}

			folder := bridge.Folder{
				ID:      f.Id,
				Name:    f.Name,
				Parents: f.Parents,
			}

			if !yield(&folder, nil) {
				return
			}
		}
	}
}

func (d *Drive) CreateFolder(ctx context.Context, parentID string, name string) (*bridge.Folder, error) {
	rq := drive.File{
		Name:     name,
		MimeType: bridge.NativeFolder,
		Parents:  []string{parentID},
	}

	f, err := d.service.Files.Create(&rq).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return &bridge.Folder{
		ID:      f.Id,
		Name:    f.Name,
		Parents: f.Parents,
	}, nil
}

// Import copies a file as a native spreadsheet. The parent is a request only - Drive may place the copy
// elsewhere.
func (d *Drive) Import(ctx context.Context, file *bridge.File, name string, parentID string) (*bridge.File, error) {
	rq := drive.File{
		Name:     name,
		MimeType: bridge.NativeSpreadsheet,
	}

	if parentID != "" {
		rq.Parents = []string{parentID}
	}

	f, err := d.service.Files.Copy(file.ID, &rq).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return toFile(f)
}

func (d *Drive) Move(ctx context.Context, file *bridge.File, folderID string) (*bridge.File, error) {
	remove := slices.DeleteFunc(slices.Clone(file.Parents), func(id string) bool { return id == folderID })

	call := d.service.Files.Update(file.ID, &drive.File{}).AddParents(folderID)
	if len(remove) > 0 {
		call.RemoveParents(strings.Join(remove, ","))
	}

	f, err := call.Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return toFile(f)
}

func (d *Drive) Trash(ctx context.Context, fileID string) error {
	_, err := d.service.Files.Update(fileID, &drive.File{Trashed: true}).Context(ctx).Do()

	return err
}

func (d *Drive) Delete(ctx context.Context, fileID string) error {
	return d.service.Files.Delete(fileID).Context(ctx).Do()
}

func (d *Drive) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	response, err := d.service.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, err
	}

	return response.Body, nil
}

// list pages through a Files.List query in creation order.
func (d *Drive) list(ctx context.Context, q string) iter.Seq2[*drive.File, error] {
	return func(yield func(*drive.File, error) bool) {
		page := ""

		for {
			call := d.service.Files.List().Q(q).OrderBy("createdTime").Fields(listFields).Context(ctx)
			if page != "" {
				call.PageToken(page)
			}

			response, err := call.Do()
			if err != nil {
				yield(nil, err)
				return
			}

			for _, f := range response.Files {
				if !yield(f, nil) {
					return
				}
			}

			if page = response.NextPageToken; page == "" {
				return
			}
		}
	}
}

func toFile(f *drive.File) (*bridge.File, error) {
	file := bridge.File{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Parents:  f.Parents,
		Trashed:  f.Trashed,
	}

	if f.ModifiedTime != "" {
		modified, err := time.Parse(time.RFC3339, f.ModifiedTime)
		if err != nil {
			return nil, fmt.Errorf("invalid modified time for %v (%w)", f.Name, err)
		}

		file.Modified = modified
	}

	return &file, nil
}
