/*
Package shell is the interactive command loop.

It prints a prompt derived from the working folder, reads one line at a
time, parses it into a Command and runs it against a session.Session.
Every outcome except exit is recorded in the audit log, which is saved
after each line. End of input behaves like exit.

Commands:

	cd <path>            change the working folder; ".." goes up
	mkdir <path>         create a folder
	type <path> "<text>" create a .txt file holding text
	rmdir <path>         delete a folder and everything in it
	dir [path]           list a folder
	log                  show the error and operation history
	clear log            drop the most recent error
	exit                 leave the shell
*/
package shell
