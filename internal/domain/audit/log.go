package audit

import "fmt"

// Log records what the shell did. Operations and errors are kept on two
// independent stacks; both grow without bound.
type Log struct {
	operations Stack[string]
	errors     Stack[string]
}

// New creates an empty log
func New() *Log {
	return &Log{}
}

// Restore rebuilds a log from oldest-first sequences, so the last element
// of each becomes the most recent entry
func Restore(operations, errors []string) *Log {
	l := New()
	for _, op := range operations {
		l.PushOperation(op)
	}
	for _, e := range errors {
		l.PushError(e)
	}
	return l
}

// PushOperation records a successful command
func (l *Log) PushOperation(text string) {
	l.operations.Push(text)
}

// PushError records a failed command
func (l *Log) PushError(text string) {
	l.errors.Push(text)
}

// PopLastError removes and returns the most recent error
func (l *Log) PopLastError() (string, bool) {
	return l.errors.Pop()
}

// Operations returns the operations most recent first
func (l *Log) Operations() []string {
	return l.operations.Items()
}

// Errors returns the errors most recent first
func (l *Log) Errors() []string {
	return l.errors.Items()
}

// Snapshot returns both sequences oldest first, the persisted order
func (l *Log) Snapshot() (operations, errors []string) {
	return l.operations.Oldest(), l.errors.Oldest()
}

// Depth returns the size of both stacks
func (l *Log) Depth() (operations, errors int) {
	return l.operations.Len(), l.errors.Len()
}

// OperationEntry formats a successful command line for the log
func OperationEntry(timestamp, input string) string {
	return fmt.Sprintf("date: %s - input: %s", timestamp, input)
}

// ErrorEntry formats a failed command line for the log
func ErrorEntry(timestamp, input, message string) string {
	return fmt.Sprintf("date: %s - input: %s - error: %s", timestamp, input, message)
}
