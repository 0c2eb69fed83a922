// Package tree models an in-memory drive as a tree of folders and files.
//
// A Folder owns an ordered list of entries. Each Entry is a tagged variant
// holding either a *File or a *Folder. Lookups and deletions are linear,
// exact-match and scoped to one kind, so a file and a folder may share a
// name inside the same parent.
//
// Ownership is strictly parent to child. Deleting a folder drops the only
// reference to its subtree.
//
// Example Usage:
//
//	drive := tree.NewDrive("C:", stamp)
//	docs := drive.CreateFolder("Docs", stamp)
//	docs.CreateFile("readme.txt", "hello", stamp)
//	listing := docs.List()
package tree
