package types

import "fmt"

// Code classifies the outcome of a shell command
type Code string

const (
	CodeOK             Code = "ok"
	CodeUsage          Code = "usage"
	CodeValidation     Code = "validation"
	CodeNotFound       Code = "not_found"
	CodeConflict       Code = "conflict"
	CodeUnknownCommand Code = "unknown_command"
)

// Result is the outcome of a single command. Failures are values, not errors:
// they abort the command but leave the session usable.
type Result struct {
	Success bool   `json:"success"`
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
	Output  string `json:"output,omitempty"`
	Exit    bool   `json:"exit,omitempty"`
}

// Success builds a successful result carrying the text to show the user
func Success(message string) Result {
	return Result{Success: true, Code: CodeOK, Message: message}
}

// Failure builds a failed result
func Failure(code Code, message string) Result {
	return Result{Success: false, Code: code, Message: message}
}

// Failuref builds a failed result with a formatted message
func Failuref(code Code, format string, args ...interface{}) Result {
	return Failure(code, fmt.Sprintf(format, args...))
}

// Failed reports whether the result is a failure
func (r Result) Failed() bool {
	return !r.Success
}
