// Package audit keeps the user-visible history of a shell session.
//
// Two last-in-first-out stacks hold formatted strings: one for operations
// that succeeded and one for errors. Views are most recent first. The
// persisted form is oldest first, and Restore pushes in that order so the
// newest entry is the first one popped again.
package audit
