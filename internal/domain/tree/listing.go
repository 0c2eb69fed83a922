package tree

// Item is one line of a folder listing
type Item struct {
	Kind      Kind
	Timestamp string
	Name      string
	Length    int
}

// Listing groups a folder's immediate children, folders first. Each group
// keeps insertion order.
type Listing struct {
	Folders []Item
	Files   []Item
}

// Empty reports whether the listing has no items
func (l Listing) Empty() bool {
	return len(l.Folders) == 0 && len(l.Files) == 0
}

// List builds the listing of the folder's immediate children
func (f *Folder) List() Listing {
	var l Listing
	for _, e := range f.entries {
		switch e.kind {
		case KindFolder:
			l.Folders = append(l.Folders, Item{
				Kind:      KindFolder,
				Timestamp: e.folder.Timestamp,
				Name:      e.folder.Name,
			})
		case KindFile:
			l.Files = append(l.Files, Item{
				Kind:      KindFile,
				Timestamp: e.file.Timestamp,
				Name:      e.file.Name,
				Length:    len(e.file.Content),
			})
		}
	}
	return l
}
