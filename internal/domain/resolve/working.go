package resolve

import "strings"

// Separator joins components of a displayed path
const Separator = `\`

// Working is a location on the drive: the drive label followed by the names
// of the folders entered from the root. It is a value; methods return copies.
type Working struct {
	label   string
	folders []string
}

// Root returns the location of the drive root
func Root(label string) Working {
	return Working{label: label}
}

// Label returns the drive label
func (w Working) Label() string {
	return w.label
}

// Folders returns the folder names below the root
func (w Working) Folders() []string {
	out := make([]string, len(w.folders))
	copy(out, w.folders)
	return out
}

// Depth returns the number of folders below the root
func (w Working) Depth() int {
	return len(w.folders)
}

// IsRoot reports whether w is the drive root
func (w Working) IsRoot() bool {
	return len(w.folders) == 0
}

// Parent drops the last folder. The root is its own parent.
func (w Working) Parent() Working {
	if w.IsRoot() {
		return w
	}
	return Working{label: w.label, folders: w.folders[:len(w.folders)-1 : len(w.folders)-1]}
}

// Join descends into the named folders
func (w Working) Join(names ...string) Working {
	folders := make([]string, 0, len(w.folders)+len(names))
	folders = append(folders, w.folders...)
	folders = append(folders, names...)
	return Working{label: w.label, folders: folders}
}

// Truncate keeps the first n folders
func (w Working) Truncate(n int) Working {
	if n >= len(w.folders) {
		return w
	}
	if n < 0 {
		n = 0
	}
	return Working{label: w.label, folders: w.folders[:n:n]}
}

// Equal reports whether both locations name the same folder
func (w Working) Equal(o Working) bool {
	if w.label != o.label || len(w.folders) != len(o.folders) {
		return false
	}
	for i := range w.folders {
		if w.folders[i] != o.folders[i] {
			return false
		}
	}
	return true
}

// String renders the location with backslashes, e.g. C:\Docs\Projects
func (w Working) String() string {
	if w.IsRoot() {
		return w.label
	}
	return w.label + Separator + strings.Join(w.folders, Separator)
}

// Prompt renders the shell prompt: C:\> at the root, C:\Docs> elsewhere
func (w Working) Prompt() string {
	if w.IsRoot() {
		return w.label + Separator + ">"
	}
	return w.String() + ">"
}
