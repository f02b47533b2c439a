package bridge

type destination int

const (
	sourceFolder destination = iota
	inFolder
	scratch
)

// Destination is where ConvertToNativeSheet relocates the converted file. The zero value is SourceFolder().
type Destination struct {
	kind     destination
	folderID string
}

// SourceFolder places the converted file alongside the source, in the source's first parent folder.
func SourceFolder() Destination {
	return Destination{kind: sourceFolder}
}

// InFolder places the converted file in the folder. ConvertToNativeSheet rejects an empty folder ID with
// ErrNoFolder, use Scratch() to leave the file where the platform creates it.
func InFolder(folderID string) Destination {
	return Destination{kind: inFolder, folderID: folderID}
}

// Scratch leaves the converted file wherever the platform creates it, without a follow-up move.
func Scratch() Destination {
	return Destination{kind: scratch}
}

func (d Destination) IsScratch() bool {
	return d.kind == scratch
}

func (d Destination) String() string {
	switch d.kind {
	case inFolder:
		return "folder:" + d.folderID
	case scratch:
		return "scratch"
	default:
		return "source folder"
	}
}

type ConvertOptions struct {
	// Destination defaults to the source file's folder.
	Destination Destination
	// KeepSource leaves the source file in place. The source is trashed by default.
	KeepSource bool
}

func DefaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		Destination: SourceFolder(),
		KeepSource:  false,
	}
}

// SheetRef selects a worksheet by exact name or, if Name is empty, by zero based index.
type SheetRef struct {
	Name  string
	Index int
}

func SheetNamed(name string) SheetRef {
	return SheetRef{Name: name}
}

func SheetAt(index int) SheetRef {
	return SheetRef{Index: index}
}

// UpsertOptions for UpsertSheet. The zero value reads the first sheet of the data file into a sheet named after
// the data file, writes every value as literal text and keeps the data file.
type UpsertOptions struct {
	Source         SheetRef
	Target         string
	InferTypes     bool
	DeleteDataFile bool
}
