package persistence

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/vdrive/internal/domain/audit"
	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
)

// ErrMalformed is wrapped by every decoding error caused by document shape
var ErrMalformed = errors.New("malformed document")

type folderRecord struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Timestamp string `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	Entries   []any  `json:"entries" yaml:"entries" toml:"entries"`
}

type fileRecord struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Content   string `json:"content" yaml:"content" toml:"content"`
	Timestamp string `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
}

type logRecord struct {
	Errors     []string `json:"errors" yaml:"errors" toml:"errors"`
	Operations []string `json:"operations" yaml:"operations" toml:"operations"`
}

// EncodeDrive serializes a folder and everything below it
func EncodeDrive(c Codec, drive *tree.Folder) ([]byte, error) {
	return c.Marshal(toRecord(drive))
}

// DecodeDrive rebuilds a folder tree. A record holding "content" is a file,
// anything else is a folder.
func DecodeDrive(c Codec, data []byte) (*tree.Folder, error) {
	doc, err := c.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return folderFromDoc(doc, "")
}

// EncodeLog serializes both stacks oldest first
func EncodeLog(c Codec, l *audit.Log) ([]byte, error) {
	ops, errs := l.Snapshot()
	return c.Marshal(logRecord{Errors: errs, Operations: ops})
}

// DecodeLog rebuilds a log so the last listed entries are the most recent
func DecodeLog(c Codec, data []byte) (*audit.Log, error) {
	doc, err := c.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	errs, err := stringList(doc, "errors")
	if err != nil {
		return nil, err
	}
	ops, err := stringList(doc, "operations")
	if err != nil {
		return nil, err
	}
	return audit.Restore(ops, errs), nil
}

func toRecord(f *tree.Folder) folderRecord {
	rec := folderRecord{Name: f.Name, Timestamp: f.Timestamp, Entries: make([]any, 0, f.Len())}
	for _, e := range f.Entries() {
		switch e.Kind() {
		case tree.KindFile:
			file, _ := e.File()
			rec.Entries = append(rec.Entries, fileRecord{Name: file.Name, Content: file.Content, Timestamp: file.Timestamp})
		case tree.KindFolder:
			child, _ := e.Folder()
			rec.Entries = append(rec.Entries, toRecord(child))
		}
	}
	return rec
}

func folderFromDoc(doc map[string]any, at string) (*tree.Folder, error) {
	name, err := stringField(doc, "name", at, true)
	if err != nil {
		return nil, err
	}
	timestamp, err := stringField(doc, "timestamp", at, false)
	if err != nil {
		return nil, err
	}

	folder := tree.NewFolder(name, timestamp)
	at = at + "/" + name

	raw, ok := doc["entries"]
	if !ok || raw == nil {
		return folder, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: entries is %T, want a list", ErrMalformed, at, raw)
	}

	for i, item := range list {
		m, ok := asMap(item)
		if !ok {
			return nil, fmt.Errorf("%w: %s: entry %d is %T, want a record", ErrMalformed, at, i, item)
		}
		if _, isFile := m["content"]; isFile {
			file, err := fileFromDoc(m, at)
			if err != nil {
				return nil, err
			}
			folder.Append(tree.FileEntry(file))
			continue
		}
		child, err := folderFromDoc(m, at)
		if err != nil {
			return nil, err
		}
		folder.Append(tree.FolderEntry(child))
	}
	return folder, nil
}

func fileFromDoc(doc map[string]any, at string) (*tree.File, error) {
	name, err := stringField(doc, "name", at, true)
	if err != nil {
		return nil, err
	}
	content, err := stringField(doc, "content", at+"/"+name, false)
	if err != nil {
		return nil, err
	}
	timestamp, err := stringField(doc, "timestamp", at+"/"+name, false)
	if err != nil {
		return nil, err
	}
	return &tree.File{Name: name, Content: content, Timestamp: timestamp}, nil
}

func stringField(doc map[string]any, key, at string, required bool) (string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("%w: %s: missing %q", ErrMalformed, at, key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: %q is %T, want a string", ErrMalformed, at, key, v)
	}
	return s, nil
}

func stringList(doc map[string]any, key string) ([]string, error) {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, want a list", ErrMalformed, key, v)
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] is %T, want a string", ErrMalformed, key, i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

// asMap accepts the map shapes the three decoders produce
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}
