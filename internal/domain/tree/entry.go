package tree

// Kind discriminates the two variants an Entry can hold
type Kind uint8

const (
	KindFile Kind = iota + 1
	KindFolder
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// File is a leaf entry. It is owned by exactly one Folder.
type File struct {
	Name      string
	Content   string
	Timestamp string
}

// Entry is a tagged variant over File and Folder. Exactly one of the two
// pointers is set and kind says which; construct entries with FileEntry
// and FolderEntry.
type Entry struct {
	kind   Kind
	file   *File
	folder *Folder
}

// FileEntry wraps a file
func FileEntry(f *File) Entry {
	return Entry{kind: KindFile, file: f}
}

// FolderEntry wraps a folder
func FolderEntry(f *Folder) Entry {
	return Entry{kind: KindFolder, folder: f}
}

// Kind returns which variant the entry holds
func (e Entry) Kind() Kind {
	return e.kind
}

// File returns the file and true when the entry is a file
func (e Entry) File() (*File, bool) {
	return e.file, e.kind == KindFile
}

// Folder returns the folder and true when the entry is a folder
func (e Entry) Folder() (*Folder, bool) {
	return e.folder, e.kind == KindFolder
}

// Name returns the name of whichever variant is held
func (e Entry) Name() string {
	switch e.kind {
	case KindFile:
		return e.file.Name
	case KindFolder:
		return e.folder.Name
	default:
		return ""
	}
}

// Timestamp returns the timestamp of whichever variant is held
func (e Entry) Timestamp() string {
	switch e.kind {
	case KindFile:
		return e.file.Timestamp
	case KindFolder:
		return e.folder.Timestamp
	default:
		return ""
	}
}

// is reports whether the entry has the given kind and name
func (e Entry) is(kind Kind, name string) bool {
	return e.kind == kind && e.Name() == name
}
