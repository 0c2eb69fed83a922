package tree

// Folder owns an ordered sequence of entries. Insertion order is preserved
// and nothing below a folder points back up to it; navigating to a parent
// means resolving the parent path again from the drive root.
type Folder struct {
	Name      string
	Timestamp string
	entries   []Entry
}

// NewFolder creates an empty folder
func NewFolder(name, timestamp string) *Folder {
	return &Folder{Name: name, Timestamp: timestamp}
}

// NewDrive creates the root folder of a drive. The label (e.g. "C:") is its name.
func NewDrive(label, timestamp string) *Folder {
	return NewFolder(label, timestamp)
}

// CreateFile appends a file. Callers check for name collisions first.
func (f *Folder) CreateFile(name, content, timestamp string) *File {
	file := &File{Name: name, Content: content, Timestamp: timestamp}
	f.entries = append(f.entries, FileEntry(file))
	return file
}

// CreateFolder appends a folder. Callers check for name collisions first.
func (f *Folder) CreateFolder(name, timestamp string) *Folder {
	child := NewFolder(name, timestamp)
	f.entries = append(f.entries, FolderEntry(child))
	return child
}

// Append adds an existing entry at the end. Used when rebuilding a tree
// from its persisted form.
func (f *Folder) Append(e Entry) {
	f.entries = append(f.entries, e)
}

// FindFile returns the first file named name, or nil. It does not recurse.
func (f *Folder) FindFile(name string) *File {
	if i := f.index(KindFile, name); i >= 0 {
		return f.entries[i].file
	}
	return nil
}

// FindFolder returns the first folder named name, or nil. It does not recurse.
func (f *Folder) FindFolder(name string) *Folder {
	if i := f.index(KindFolder, name); i >= 0 {
		return f.entries[i].folder
	}
	return nil
}

// DeleteFile removes the first file named name
func (f *Folder) DeleteFile(name string) bool {
	return f.remove(KindFile, name)
}

// DeleteFolder removes the first folder named name together with its
// whole subtree
func (f *Folder) DeleteFolder(name string) bool {
	return f.remove(KindFolder, name)
}

// Entries returns the entries in insertion order. The slice is a copy;
// the entries themselves are shared.
func (f *Folder) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the number of immediate children
func (f *Folder) Len() int {
	return len(f.entries)
}

func (f *Folder) index(kind Kind, name string) int {
	for i, e := range f.entries {
		if e.is(kind, name) {
			return i
		}
	}
	return -1
}

func (f *Folder) remove(kind Kind, name string) bool {
	i := f.index(kind, name)
	if i < 0 {
		return false
	}
	copy(f.entries[i:], f.entries[i+1:])
	f.entries[len(f.entries)-1] = Entry{}
	f.entries = f.entries[:len(f.entries)-1]
	return true
}
