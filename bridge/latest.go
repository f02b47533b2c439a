package bridge

import (
	"iter"
	"strings"
)

// Selector determines the representation of the file returned by PickLatestFile.
type Selector int

const (
	SelectName Selector = iota
	SelectID
	SelectFile
)

// ParseSelector maps "id" and "file" to their selectors. Anything else selects the file name.
func ParseSelector(s string) Selector {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "id":
		return SelectID
	case "file":
		return SelectFile
	default:
		return SelectName
	}
}

func (s Selector) String() string {
	switch s {
	case SelectID:
		return "id"
	case SelectFile:
		return "file"
	default:
		return "name"
	}
}

// Pick is the file chosen by PickLatestFile. Value is the file ID or name according to the selector and is empty
// for SelectFile.
type Pick struct {
	File  *File
	Value string
}

// PickLatestFile consumes a listing and returns the file with the latest modification time. A file replaces the
// current candidate only if it is strictly newer so ties go to the file seen first. An empty listing returns
// nil without an error.
func PickLatestFile(files iter.Seq2[*File, error], selector Selector) (*Pick, error) {
	var latest *File

	for file, err := range files {
		if err != nil {
			return nil, err
		}

		if latest == nil || file.Modified.After(latest.Modified) {
			latest = file
		}
	}

	if latest == nil {
		return nil, nil
	}

	pick := Pick{
		File: latest,
	}

	switch selector {
	case SelectID:
		pick.Value = latest.ID
	case SelectName:
		pick.Value = latest.Name
	}

	return &pick, nil
}
