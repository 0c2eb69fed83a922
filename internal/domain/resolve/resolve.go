package resolve

import (
	"errors"
	"strings"

	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
)

// ErrNotFound is the cause of every failed walk
var ErrNotFound = errors.New("The specified path does not exist.")

// NotFoundError names the component a walk stopped at
type NotFoundError struct {
	Walked    []string
	Component string
}

func (e *NotFoundError) Error() string {
	return ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Missing returns the partial path that failed, for diagnostics
func (e *NotFoundError) Missing() string {
	return strings.Join(append(e.Walked[:len(e.Walked):len(e.Walked)], e.Component), InputSeparator)
}

// Walk descends from start through the named folders
func Walk(start *tree.Folder, components []string) (*tree.Folder, error) {
	node := start
	for i, name := range components {
		next := node.FindFolder(name)
		if next == nil {
			return nil, &NotFoundError{Walked: components[:i:i], Component: name}
		}
		node = next
	}
	return node, nil
}

// Locate finds the folder a working location points at
func Locate(drive *tree.Folder, w Working) (*tree.Folder, error) {
	return Walk(drive, w.folders)
}

// Resolve walks an expression and returns the folder it addresses together
// with that folder's location. Drive-rooted expressions start at drive
// whatever label they name.
func Resolve(drive *tree.Folder, w Working, e Expr) (*tree.Folder, Working, error) {
	base := w
	if e.Absolute {
		base = Root(drive.Name)
	}

	start, err := Locate(drive, base)
	if err != nil {
		return nil, Working{}, err
	}
	if e.Empty() {
		return start, base, nil
	}

	folder, err := Walk(start, e.Components)
	if err != nil {
		return nil, Working{}, err
	}
	return folder, base.Join(e.Components...), nil
}

// Navigate computes the destination of a change-directory. ".." moves to
// the parent and is a no-op at the root; anything else must resolve to an
// existing folder.
func Navigate(drive *tree.Folder, w Working, raw string) (Working, error) {
	if raw == ParentRef {
		return w.Parent(), nil
	}
	_, dest, err := Resolve(drive, w, Parse(raw))
	if err != nil {
		return w, err
	}
	return dest, nil
}

// Nearest returns the deepest prefix of w that still exists on the drive
func Nearest(drive *tree.Folder, w Working) Working {
	node := drive
	for i, name := range w.folders {
		next := node.FindFolder(name)
		if next == nil {
			return w.Truncate(i)
		}
		node = next
	}
	return w
}
