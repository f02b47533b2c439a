// Package memdrive is an in-memory implementation of the bridge Drive and Spreadsheets platform.
//
// It mimics the behaviour of the hosted platform that the bridge operations depend on: listings are returned in
// creation order, imported spreadsheets are created in the root folder irrespective of the requested parent,
// values written as USER_ENTERED are parsed into numbers and booleans unless the cell is formatted as text, and
// the data range of a sheet is the smallest rectangle anchored at A1 holding every non-empty cell.
package memdrive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/uhppoted/sheets-bridge/bridge"
	"github.com/uhppoted/sheets-bridge/grid"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNotFolder      = errors.New("not a folder")
	ErrNotSpreadsheet = errors.New("not a spreadsheet")
	ErrUnsupported    = errors.New("unsupported operation")
)

var (
	_ bridge.Drive        = (*Store)(nil)
	_ bridge.Spreadsheets = (*Store)(nil)
)

type entry struct {
	file    bridge.File
	folder  bool
	content []byte
	sheets  []*worksheet
	next    int64
}

type Store struct {
	root    string
	entries map[string]*entry
	order   []string
	clock   func() time.Time
	mu      sync.Mutex
}

func New() *Store {
	root := uuid.NewString()

	return &Store{
		root: root,
		entries: map[string]*entry{
			root: {
				file: bridge.File{
					ID:       root,
					Name:     "My Drive",
					MimeType: bridge.NativeFolder,
				},
				folder: true,
			},
		},
		clock: time.Now,
	}
}

// WithClock replaces the clock used to timestamp created and modified files.
func (s *Store) WithClock(clock func() time.Time) *Store {
	s.clock = clock

	return s
}

func (s *Store) Root() string {
	return s.root
}

func (s *Store) File(ctx context.Context, fileID string) (*bridge.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[fileID]
	if !ok {
		return nil, fmt.Errorf("file %v %w", fileID, ErrNotFound)
	}

	return clone(e.file), nil
}

func (s *Store) Files(ctx context.Context, folderID string) iter.Seq2[*bridge.File, error] {
	list, err := s.children(folderID, func(e *entry) bool { return !e.folder })

	return func(yield func(*bridge.File, error) bool) {
		if err != nil {
			yield(nil, err)
			return
		}

		for _, f := range list {
			if !yield(clone(f), nil) {
				return
			}
		}
	}
}

func (s *Store) Folders(ctx context.Context, parentID string, name string) iter.Seq2[*bridge.Folder, error] {
	list, err := s.children(parentID, func(e *entry) bool { return e.folder && e.file.Name == name })

	return func(yield func(*bridge.Folder, error) bool) {
		if err != nil {
			yield(nil, err)
			return
		}

		for _, f := range list {
			if !yield(folder(f), nil) {
				return
			}
		}
	}
}

func (s *Store) CreateFolder(ctx context.Context, parentID string, name string) (*bridge.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.isFolder(parentID); err != nil {
		return nil, err
	}

	e := s.add(name, bridge.NativeFolder, parentID)
	e.folder = true

	return folder(e.file), nil
}

// Import converts CSV, TSV, XLSX and native spreadsheet files to a new native spreadsheet. The new spreadsheet is
// always created in the root folder.
func (s *Store) Import(ctx context.Context, file *bridge.File, name string, parentID string) (*bridge.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.entries[file.ID]
	if !ok || src.folder {
		return nil, fmt.Errorf("file %v %w", file.ID, ErrNotFound)
	}

	var sheets []*worksheet

	switch bridge.Classify(&src.file) {
	case bridge.KindNative:
		for _, ws := range src.sheets {
			sheets = append(sheets, ws.copy())
		}

	case bridge.KindCSV, bridge.KindTSV:
		comma := grid.CSV
		if bridge.Classify(&src.file) == bridge.KindTSV {
			comma = grid.TSV
		}

		g, err := grid.ParseCSV(bytes.NewReader(src.content), comma)
		if err != nil {
			return nil, err
		}

		sheets = append(sheets, imported("Sheet1", g))

	case bridge.KindWorkbook:
		titles, err := grid.Sheets(bytes.NewReader(src.content))
		if err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrUnsupported, err)
		}

		for _, title := range titles {
			g, err := grid.ReadXLSX(bytes.NewReader(src.content), title, 0)
			if err != nil {
				return nil, err
			}

			sheets = append(sheets, imported(title, g))
		}

	default:
		return nil, fmt.Errorf("%w (cannot convert %v)", ErrUnsupported, src.file.MimeType)
	}

	e := s.add(name, bridge.NativeSpreadsheet, s.root)
	for i, ws := range sheets {
		ws.sheet.ID = int64(i)
		ws.sheet.Index = i
	}

	e.sheets = sheets
	e.next = int64(len(sheets))

	return clone(e.file), nil
}

func (s *Store) Move(ctx context.Context, file *bridge.File, folderID string) (*bridge.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[file.ID]
	if !ok {
		return nil, fmt.Errorf("file %v %w", file.ID, ErrNotFound)
	}

	if err := s.isFolder(folderID); err != nil {
		return nil, err
	}

	e.file.Parents = []string{folderID}

	return clone(e.file), nil
}

func (s *Store) Trash(ctx context.Context, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[fileID]
	if !ok {
		return fmt.Errorf("file %v %w", fileID, ErrNotFound)
	}

	e.file.Trashed = true

	return nil
}

func (s *Store) Delete(ctx context.Context, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[fileID]; !ok {
		return fmt.Errorf("file %v %w", fileID, ErrNotFound)
	}

	delete(s.entries, fileID)
	s.order = slices.DeleteFunc(s.order, func(id string) bool { return id == fileID })

	return nil
}

func (s *Store) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[fileID]
	if !ok {
		return nil, fmt.Errorf("file %v %w", fileID, ErrNotFound)
	}

	if e.folder || e.file.MimeType == bridge.NativeSpreadsheet {
		return nil, fmt.Errorf("%w (%v has no binary content)", ErrUnsupported, e.file.Name)
	}

	return io.NopCloser(bytes.NewReader(e.content)), nil
}

// AddFolder creates a folder without checking for an existing folder with the same name. An empty parentID is
// the root folder.
func (s *Store) AddFolder(parentID string, name string) *bridge.Folder {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.add(name, bridge.NativeFolder, s.parent(parentID))
	e.folder = true

	return folder(e.file)
}

// AddFile creates a binary file. An empty parentID is the root folder.
func (s *Store) AddFile(parentID string, name string, mimetype string, content []byte) *bridge.File {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.add(name, mimetype, s.parent(parentID))
	e.content = slices.Clone(content)

	return clone(e.file)
}

// AddSpreadsheet creates a native spreadsheet with the titled sheets, or a single 'Sheet1' if no titles are
// given.
func (s *Store) AddSpreadsheet(parentID string, name string, titles ...string) *bridge.File {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(titles) == 0 {
		titles = []string{"Sheet1"}
	}

	e := s.add(name, bridge.NativeSpreadsheet, s.parent(parentID))
	for i, title := range titles {
		e.sheets = append(e.sheets, newWorksheet(int64(i), title, i))
	}

	e.next = int64(len(titles))

	return clone(e.file)
}

// Touch sets the modification time of a file.
func (s *Store) Touch(fileID string, modified time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[fileID]; ok {
		e.file.Modified = modified
	}
}

// Exists is true for files that have not been permanently deleted (trashed files exist).
func (s *Store) Exists(fileID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[fileID]

	return ok
}

func (s *Store) add(name string, mimetype string, parentID string) *entry {
	id := uuid.NewString()
	e := &entry{
		file: bridge.File{
			ID:       id,
			Name:     name,
			MimeType: mimetype,
			Parents:  []string{parentID},
			Modified: s.clock(),
		},
	}

	s.entries[id] = e
	s.order = append(s.order, id)

	return e
}

func (s *Store) parent(id string) string {
	if id == "" {
		return s.root
	}

	return id
}

func (s *Store) isFolder(id string) error {
	if e, ok := s.entries[id]; !ok {
		return fmt.Errorf("folder %v %w", id, ErrNotFound)
	} else if !e.folder {
		return fmt.Errorf("%v %w", id, ErrNotFolder)
	}

	return nil
}

func (s *Store) children(folderID string, match func(*entry) bool) ([]bridge.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.isFolder(folderID); err != nil {
		return nil, err
	}

	list := []bridge.File{}
	for _, id := range s.order {
		e := s.entries[id]
		if !e.file.Trashed && slices.Contains(e.file.Parents, folderID) && match(e) {
			list = append(list, *clone(e.file))
		}
	}

	return list, nil
}

func clone(f bridge.File) *bridge.File {
	f.Parents = slices.Clone(f.Parents)

	return &f
}

func folder(f bridge.File) *bridge.Folder {
	return &bridge.Folder{
		ID:      f.ID,
		Name:    f.Name,
		Parents: slices.Clone(f.Parents),
	}
}
