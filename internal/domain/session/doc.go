/*
Package session runs the shell's commands against one drive.

A Session owns the drive tree, the working location and the audit log.
Commands never panic or return errors for user mistakes: they return a
types.Result carrying a code and a message. Only a failure to persist is
returned as an error, and callers treat it as fatal.

# Commands

	MakeFolder(ctx, "Docs/Projects")
	MakeFile(ctx, "Docs/readme.txt", "hello")
	RemoveFolder(ctx, "Docs")        // backs up the drive first
	List("C:/Docs")
	ChangeDirectory("..")
	ShowLog()
	ClearLog()

Folder and file names are unique per kind inside a folder, so a file and
a folder may share a name.
*/
package session
