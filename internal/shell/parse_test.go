package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/vdrive/internal/shared/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"exit", Command{Verb: VerbExit}},
		{"EXIT", Command{Verb: VerbExit}},
		{"Log", Command{Verb: VerbLog}},
		{"clear LOG", Command{Verb: VerbClearLog}},
		{"cd Docs", Command{Verb: VerbCD, Path: "Docs"}},
		{"CD ..", Command{Verb: VerbCD, Path: ".."}},
		{"mkdir C:/Docs/Projects", Command{Verb: VerbMkdir, Path: "C:/Docs/Projects"}},
		{"rmdir Docs", Command{Verb: VerbRmdir, Path: "Docs"}},
		{"dir", Command{Verb: VerbDir}},
		{"dir Docs", Command{Verb: VerbDir, Path: "Docs"}},
		{`type Docs/readme.txt "hello"`, Command{Verb: VerbType, Path: "Docs/readme.txt", Content: "hello"}},
		{`type a.txt "hello world"`, Command{Verb: VerbType, Path: "a.txt", Content: "hello world"}},
		{`type a.txt ""`, Command{Verb: VerbType, Path: "a.txt", Content: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line    string
		code    types.Code
		message string
	}{
		{"cd", types.CodeUsage, "Incorrect command usage. Usage: cd path"},
		{"cd a b", types.CodeUsage, "Incorrect command usage. Usage: cd path"},
		{"mkdir My Folder", types.CodeUsage, "Incorrect command usage. Usage: mkdir path"},
		{"rmdir", types.CodeUsage, "Incorrect command usage. Usage: rmdir path"},
		{"dir a b", types.CodeUsage, "Incorrect command usage. Usage: dir [path]"},
		{"type a.txt", types.CodeUsage, "Incorrect command usage. Usage: type path content"},
		{"type a.txt hello", types.CodeUsage, `Incorrect command usage. Usage: type path "content"`},
		{`type a.txt "one "two" three"`, types.CodeUsage, `Incorrect command usage. Usage: type path "content"`},
		{`type a.txt "x" tail`, types.CodeUsage, `Incorrect command usage. Usage: type path "content"`},
		{"ls", types.CodeUnknownCommand, MsgUnrecognized},
		{"", types.CodeUnknownCommand, MsgUnrecognized},
		{"exit now", types.CodeUnknownCommand, MsgUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := Parse(tt.line)
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.code, perr.Code)
			assert.Equal(t, tt.message, perr.Error())

			r := perr.Result()
			assert.True(t, r.Failed())
		})
	}
}
