package tree

// WalkFunc is called for every entry below a folder. path holds the names
// of the folders between the walk root and the entry, excluding the entry.
// Returning an error stops the walk.
type WalkFunc func(path []string, e Entry) error

// Walk visits the subtree depth-first in insertion order
func (f *Folder) Walk(fn WalkFunc) error {
	return f.walk(nil, fn)
}

func (f *Folder) walk(path []string, fn WalkFunc) error {
	for _, e := range f.entries {
		if err := fn(path, e); err != nil {
			return err
		}
		if child, ok := e.Folder(); ok {
			next := append(path[:len(path):len(path)], child.Name)
			if err := child.walk(next, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats summarizes a subtree
type Stats struct {
	Folders int
	Files   int
	Bytes   int
	Depth   int
}

// Stats counts every entry below the folder
func (f *Folder) Stats() Stats {
	var s Stats
	_ = f.Walk(func(path []string, e Entry) error {
		if len(path)+1 > s.Depth {
			s.Depth = len(path) + 1
		}
		switch e.kind {
		case KindFolder:
			s.Folders++
		case KindFile:
			s.Files++
			s.Bytes += len(e.file.Content)
		}
		return nil
	})
	return s
}
