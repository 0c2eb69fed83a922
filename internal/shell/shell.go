package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/vdrive/internal/domain/session"
	"github.com/GriffinCanCode/vdrive/internal/shared/id"
	"github.com/GriffinCanCode/vdrive/internal/shared/paths"
	"github.com/GriffinCanCode/vdrive/internal/shared/types"
)

// MsgExit is printed when the shell stops
const MsgExit = "Exiting console..."

// Recorder receives one measurement per executed command
type Recorder interface {
	ObserveCommand(verb string, code types.Code, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCommand(string, types.Code, time.Duration) {}

// Options configures a shell
type Options struct {
	Logger   *zap.Logger
	Recorder Recorder
}

// Shell reads command lines, runs them against a session and prints the
// outcome
type Shell struct {
	session  *session.Session
	in       *bufio.Reader
	out      io.Writer
	logger   *zap.Logger
	recorder Recorder
}

// New creates a shell reading from in and writing to out
func New(s *session.Session, in io.Reader, out io.Writer, opts Options) *Shell {
	sh := &Shell{
		session:  s,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   opts.Logger,
		recorder: opts.Recorder,
	}
	if sh.logger == nil {
		sh.logger = zap.NewNop()
	}
	if sh.recorder == nil {
		sh.recorder = nopRecorder{}
	}
	return sh
}

// Announce tells the user which persisted files were created fresh
func (sh *Shell) Announce(opened session.Opened, drivePath, logPath string) {
	if opened.DriveCreated {
		fmt.Fprintf(sh.out, "File '%s' not found. A new file will be created for drive %s.\n",
			drivePath, paths.LabelStem(sh.session.Drive().Name))
	}
	if opened.LogCreated {
		fmt.Fprintf(sh.out, "File '%s' not found. A new file will be created for operations and errors.\n", logPath)
	}
}

// Run prompts for and executes commands until exit, end of input or a
// persistence failure. Only the last is returned as an error.
func (sh *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(sh.out, sh.session.Prompt())
		// lines have no length limit; a final line without a newline still runs
		raw, err := sh.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if err != nil && raw == "" {
			fmt.Fprintln(sh.out)
			fmt.Fprintln(sh.out, MsgExit)
			return nil
		}

		line := strings.TrimSpace(raw)
		res, err := sh.Execute(ctx, line)
		if err != nil {
			return err
		}
		sh.print(res)
		if res.Exit {
			return nil
		}

		if err := sh.session.Record(ctx, line, res); err != nil {
			return err
		}
	}
}

// Execute parses and runs one trimmed line. exit is not recorded in the
// audit log; callers record every other outcome.
func (sh *Shell) Execute(ctx context.Context, line string) (types.Result, error) {
	start := time.Now()

	var res types.Result
	verb := "invalid"
	cmd, err := Parse(line)

	var perr *ParseError
	switch {
	case errors.As(err, &perr):
		res = perr.Result()
	case err != nil:
		return types.Result{}, err
	default:
		verb = string(cmd.Verb)
		if res, err = sh.dispatch(ctx, cmd); err != nil {
			return types.Result{}, err
		}
	}

	sh.recorder.ObserveCommand(verb, res.Code, time.Since(start))
	sh.logger.Debug("Command executed",
		zap.String("session", sh.session.ID().String()),
		zap.String("command", id.NewCommandID().String()),
		zap.String("verb", verb),
		zap.String("code", string(res.Code)))
	return res, nil
}

func (sh *Shell) dispatch(ctx context.Context, cmd Command) (types.Result, error) {
	s := sh.session
	switch cmd.Verb {
	case VerbExit:
		r := types.Success(MsgExit)
		r.Exit = true
		return r, nil
	case VerbCD:
		return s.ChangeDirectory(cmd.Path), nil
	case VerbMkdir:
		return s.MakeFolder(ctx, cmd.Path)
	case VerbType:
		return s.MakeFile(ctx, cmd.Path, cmd.Content)
	case VerbRmdir:
		return s.RemoveFolder(ctx, cmd.Path)
	case VerbDir:
		return s.List(cmd.Path), nil
	case VerbLog:
		return s.ShowLog(), nil
	case VerbClearLog:
		return s.ClearLog(), nil
	default:
		return types.Failure(types.CodeUnknownCommand, MsgUnrecognized), nil
	}
}

func (sh *Shell) print(r types.Result) {
	if r.Output != "" {
		fmt.Fprint(sh.out, r.Output)
	}
	if r.Message != "" {
		fmt.Fprintln(sh.out, r.Message)
	}
}
