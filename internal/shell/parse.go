package shell

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/vdrive/internal/shared/types"
)

// Verb names a shell command
type Verb string

const (
	VerbCD       Verb = "cd"
	VerbMkdir    Verb = "mkdir"
	VerbType     Verb = "type"
	VerbRmdir    Verb = "rmdir"
	VerbDir      Verb = "dir"
	VerbLog      Verb = "log"
	VerbClearLog Verb = "clear log"
	VerbExit     Verb = "exit"
)

// MsgUnrecognized is reported for any line that is not a command
const MsgUnrecognized = "Unrecognized command. Available commands: cd, mkdir, type, rmdir, dir, exit, log"

// Command is a parsed input line
type Command struct {
	Verb    Verb
	Path    string
	Content string
}

// ParseError is a line that could not be parsed into a command
type ParseError struct {
	Code    types.Code
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// Result converts the error into a failed command outcome
func (e *ParseError) Result() types.Result {
	return types.Failure(e.Code, e.Message)
}

func usage(format string) *ParseError {
	return &ParseError{Code: types.CodeUsage, Message: "Incorrect command usage. Usage: " + format}
}

// Parse splits a trimmed line into a command.
//
// exit, log and clear log must make up the whole line, in any case. Other
// lines are split on single spaces and the first word, lower-cased, is the
// verb. type keeps everything after the path intact:
//
//	type Docs/readme.txt "hello world"
func Parse(line string) (Command, error) {
	switch strings.ToLower(line) {
	case string(VerbExit):
		return Command{Verb: VerbExit}, nil
	case string(VerbClearLog):
		return Command{Verb: VerbClearLog}, nil
	case string(VerbLog):
		return Command{Verb: VerbLog}, nil
	}

	parts := strings.Split(line, " ")
	verb := Verb(strings.ToLower(parts[0]))
	args := parts[1:]

	switch verb {
	case VerbCD, VerbMkdir, VerbRmdir:
		if len(args) != 1 {
			return Command{}, usage(fmt.Sprintf("%s path", verb))
		}
		return Command{Verb: verb, Path: args[0]}, nil

	case VerbDir:
		if len(args) > 1 {
			return Command{}, usage("dir [path]")
		}
		cmd := Command{Verb: verb}
		if len(args) == 1 {
			cmd.Path = args[0]
		}
		return cmd, nil

	case VerbType:
		return parseType(line)

	default:
		return Command{}, &ParseError{Code: types.CodeUnknownCommand, Message: MsgUnrecognized}
	}
}

// parseType accepts `type <path> "<content>"`: exactly two quotes, the
// first preceded by a space and the last closing the line
func parseType(line string) (Command, error) {
	if len(strings.SplitN(line, " ", 3)) != 3 {
		return Command{}, usage("type path content")
	}

	_, args, _ := strings.Cut(line, " ")
	path, rest, found := strings.Cut(args, ` "`)
	if !found || strings.Count(args, `"`) != 2 || !strings.HasSuffix(rest, `"`) {
		return Command{}, usage(`type path "content"`)
	}
	return Command{Verb: VerbType, Path: path, Content: strings.TrimSuffix(rest, `"`)}, nil
}
