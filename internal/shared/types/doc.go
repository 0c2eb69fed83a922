// Package types provides shared data structures for the vdrive shell.
//
// Core Types:
//   - Result: Outcome of a shell command (success or a coded failure)
//   - Code: Failure classification (usage, validation, not_found, conflict, unknown_command)
//   - Clock: Injectable time source
//
// Command handlers never panic or return errors for user mistakes. They
// return a Result, which the shell prints and records in the audit log.
//
// Example Usage:
//
//	if name == "" {
//	    return types.Failure(types.CodeValidation, "Name cannot be empty.")
//	}
//	return types.Success("Folder created")
package types
