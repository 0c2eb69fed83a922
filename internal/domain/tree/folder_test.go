package tree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ts = "01/02/2024 10:30 AM"

func TestCreateAndFind(t *testing.T) {
	drive := NewDrive("C:", ts)
	docs := drive.CreateFolder("Docs", ts)
	file := drive.CreateFile("notes.txt", "hi", ts)

	assert.Same(t, docs, drive.FindFolder("Docs"))
	assert.Same(t, file, drive.FindFile("notes.txt"))
	assert.Nil(t, drive.FindFolder("notes.txt"))
	assert.Nil(t, drive.FindFile("Docs"))
	assert.Nil(t, drive.FindFolder("docs"), "lookups are case-sensitive")
	assert.Equal(t, 2, drive.Len())
}

func TestFindDoesNotRecurse(t *testing.T) {
	drive := NewDrive("C:", ts)
	drive.CreateFolder("A", ts).CreateFolder("B", ts)

	assert.Nil(t, drive.FindFolder("B"))
}

func TestFileAndFolderShareName(t *testing.T) {
	drive := NewDrive("C:", ts)
	folder := drive.CreateFolder("same", ts)
	file := drive.CreateFile("same", "", ts)

	assert.Same(t, folder, drive.FindFolder("same"))
	assert.Same(t, file, drive.FindFile("same"))

	require.True(t, drive.DeleteFile("same"))
	assert.Same(t, folder, drive.FindFolder("same"))
	assert.Nil(t, drive.FindFile("same"))
}

func TestFindReturnsFirstMatch(t *testing.T) {
	drive := NewDrive("C:", ts)
	first := drive.CreateFolder("dup", ts)
	drive.CreateFolder("dup", ts)

	assert.Same(t, first, drive.FindFolder("dup"))
}

func TestDeletePreservesOrder(t *testing.T) {
	drive := NewDrive("C:", ts)
	drive.CreateFolder("a", ts)
	drive.CreateFile("b.txt", "", ts)
	drive.CreateFolder("c", ts)
	drive.CreateFolder("d", ts)

	require.True(t, drive.DeleteFolder("c"))
	assert.False(t, drive.DeleteFolder("c"))
	assert.False(t, drive.DeleteFolder("b.txt"))

	var names []string
	for _, e := range drive.Entries() {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a", "b.txt", "d"}, names)
}

func TestDeleteFolderDropsSubtree(t *testing.T) {
	drive := NewDrive("C:", ts)
	a := drive.CreateFolder("A", ts)
	a.CreateFile("f.txt", "x", ts)
	a.CreateFolder("B", ts).CreateFile("g.txt", "y", ts)

	require.True(t, drive.DeleteFolder("A"))
	assert.Nil(t, drive.FindFolder("A"))
	assert.Equal(t, Stats{}, drive.Stats())
}

func TestEntriesIsACopy(t *testing.T) {
	drive := NewDrive("C:", ts)
	drive.CreateFolder("a", ts)

	entries := drive.Entries()
	entries[0] = FileEntry(&File{Name: "x"})

	assert.NotNil(t, drive.FindFolder("a"))
}

func TestEntryVariant(t *testing.T) {
	f := FileEntry(&File{Name: "a.txt", Timestamp: ts})
	d := FolderEntry(NewFolder("a", ts))

	_, isFolder := f.Folder()
	file, isFile := f.File()
	assert.False(t, isFolder)
	assert.True(t, isFile)
	assert.Equal(t, "a.txt", file.Name)
	assert.Equal(t, KindFile, f.Kind())

	_, isFile = d.File()
	assert.False(t, isFile)
	assert.Equal(t, KindFolder, d.Kind())
	assert.Equal(t, "folder", d.Kind().String())
	assert.Equal(t, ts, d.Timestamp())

	assert.Equal(t, "", Entry{}.Name())
	assert.Equal(t, "unknown", Entry{}.Kind().String())
}

func TestList(t *testing.T) {
	drive := NewDrive("C:", ts)
	drive.CreateFile("z.txt", "hello", ts)
	drive.CreateFolder("B", ts)
	drive.CreateFile("a.txt", "", ts)
	drive.CreateFolder("A", ts)

	l := drive.List()

	assert.Equal(t, []Item{
		{Kind: KindFolder, Timestamp: ts, Name: "B"},
		{Kind: KindFolder, Timestamp: ts, Name: "A"},
	}, l.Folders)
	assert.Equal(t, []Item{
		{Kind: KindFile, Timestamp: ts, Name: "z.txt", Length: 5},
		{Kind: KindFile, Timestamp: ts, Name: "a.txt", Length: 0},
	}, l.Files)
	assert.False(t, l.Empty())
	assert.True(t, NewFolder("x", ts).List().Empty())
}

func TestWalkAndStats(t *testing.T) {
	drive := NewDrive("C:", ts)
	docs := drive.CreateFolder("Docs", ts)
	projects := docs.CreateFolder("Projects", ts)
	projects.CreateFile("readme.txt", "hello", ts)
	drive.CreateFile("top.txt", "abc", ts)

	var seen []string
	err := drive.Walk(func(path []string, e Entry) error {
		seen = append(seen, joinPath(path, e.Name()))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Docs", "Docs/Projects", "Docs/Projects/readme.txt", "top.txt"}, seen)

	assert.Equal(t, Stats{Folders: 2, Files: 2, Bytes: 8, Depth: 3}, drive.Stats())
}

func TestWalkStops(t *testing.T) {
	drive := NewDrive("C:", ts)
	drive.CreateFolder("a", ts)
	drive.CreateFolder("b", ts)

	stop := errors.New("stop")
	calls := 0
	err := drive.Walk(func(path []string, e Entry) error {
		calls++
		return stop
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func joinPath(path []string, name string) string {
	out := ""
	for _, p := range path {
		out += p + "/"
	}
	return out + name
}
