package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/vdrive/internal/domain/resolve"
	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
	"github.com/GriffinCanCode/vdrive/internal/shared/types"
	"github.com/GriffinCanCode/vdrive/internal/shared/utils"
)

// Conflict messages
const (
	MsgFolderExists = "A folder with that name already exists."
	MsgFileExists   = "A file with that name already exists."
)

// MakeFolder creates a folder. raw is "name" or "path/name"; the path is
// resolved from the working folder or, when it names a drive, the root.
func (s *Session) MakeFolder(ctx context.Context, raw string) (types.Result, error) {
	parent, at, name, res := s.target(raw)
	if res != nil {
		return *res, nil
	}
	if err := utils.ValidateFolderName(name); err != nil {
		return types.Failure(types.CodeValidation, err.Error()), nil
	}
	if parent.FindFolder(name) != nil {
		return types.Failure(types.CodeConflict, MsgFolderExists), nil
	}

	parent.CreateFolder(name, s.now())
	if err := s.saveDrive(ctx); err != nil {
		return types.Result{}, err
	}
	return types.Success(fmt.Sprintf("Folder '%s' created successfully in %s", name, at)), nil
}

// MakeFile creates a text file holding content
func (s *Session) MakeFile(ctx context.Context, raw, content string) (types.Result, error) {
	parent, at, name, res := s.target(raw)
	if res != nil {
		return *res, nil
	}
	if err := utils.ValidateFileName(name); err != nil {
		return types.Failure(types.CodeValidation, err.Error()), nil
	}
	if parent.FindFile(name) != nil {
		return types.Failure(types.CodeConflict, MsgFileExists), nil
	}

	parent.CreateFile(name, content, s.now())
	if err := s.saveDrive(ctx); err != nil {
		return types.Result{}, err
	}
	return types.Success(fmt.Sprintf("File '%s' created successfully in %s", name, at)), nil
}

// RemoveFolder deletes a folder and everything below it. The whole drive is
// backed up first. If the working folder disappears with it, the session
// moves to the deepest folder that still exists.
func (s *Session) RemoveFolder(ctx context.Context, raw string) (types.Result, error) {
	parent, at, name, res := s.target(raw)
	if res != nil {
		return *res, nil
	}
	if err := utils.ValidateFolderName(name); err != nil {
		return types.Failure(types.CodeValidation, err.Error()), nil
	}
	if parent.FindFolder(name) == nil {
		return types.Failuref(types.CodeNotFound, "Could not find folder '%s' in %s", name, at), nil
	}

	path, err := s.store.Backup(ctx, s.drive, name)
	if err != nil {
		s.logger.Error("Failed to back up drive",
			zap.String("session", s.id.String()),
			zap.String("folder", name),
			zap.Error(err))
		return types.Result{}, fmt.Errorf("failed to back up drive before deleting %s: %w", name, err)
	}
	s.observer.ObserveBackup()
	s.logger.Debug("Drive backed up",
		zap.String("session", s.id.String()),
		zap.String("folder", name),
		zap.String("path", path))

	parent.DeleteFolder(name)
	if moved := resolve.Nearest(s.drive, s.wd); !moved.Equal(s.wd) {
		s.logger.Debug("Working folder removed",
			zap.String("session", s.id.String()),
			zap.String("from", s.wd.String()),
			zap.String("to", moved.String()))
		s.wd = moved
	}

	if err := s.saveDrive(ctx); err != nil {
		return types.Result{}, err
	}
	return types.Success(fmt.Sprintf("Folder '%s' deleted successfully from %s", name, at)), nil
}

// List renders the immediate children of the folder raw addresses. An
// empty raw lists the working folder.
func (s *Session) List(raw string) types.Result {
	e := s.parse(raw)
	folder, at, err := resolve.Resolve(s.drive, s.wd, e)
	if err != nil {
		return s.notFound(err)
	}
	r := types.Success("")
	r.Output = RenderListing(at, folder.List())
	return r
}

// ChangeDirectory moves the working location. ".." goes up one level and
// does nothing at the root.
func (s *Session) ChangeDirectory(raw string) types.Result {
	if raw != resolve.ParentRef {
		s.warnForeign(resolve.Parse(raw))
	}
	dest, err := resolve.Navigate(s.drive, s.wd, raw)
	if err != nil {
		return s.notFound(err)
	}
	s.wd = dest
	return types.Success("")
}

// ShowLog renders the error history then the operation history, most
// recent first
func (s *Session) ShowLog() types.Result {
	var b strings.Builder
	b.WriteString("Error history:\n")
	for _, e := range s.log.Errors() {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	b.WriteString("\nOperation history:\n")
	for _, op := range s.log.Operations() {
		b.WriteString(op)
		b.WriteByte('\n')
	}
	r := types.Success("")
	r.Output = b.String()
	return r
}

// ClearLog removes the most recent error
func (s *Session) ClearLog() types.Result {
	removed, ok := s.log.PopLastError()
	if !ok {
		return types.Success("Error history is empty.")
	}
	return types.Success("The last error has been removed.\n" + removed)
}

// target resolves the folder that contains the last component of raw.
// A non-nil result is a failure to report.
func (s *Session) target(raw string) (*tree.Folder, resolve.Working, string, *types.Result) {
	parentExpr, name := resolve.Split(raw)
	s.warnForeign(parentExpr)

	parent, at, err := resolve.Resolve(s.drive, s.wd, parentExpr)
	if err != nil {
		r := s.notFound(err)
		return nil, resolve.Working{}, "", &r
	}
	return parent, at, name, nil
}

func (s *Session) parse(raw string) resolve.Expr {
	e := resolve.Parse(raw)
	s.warnForeign(e)
	return e
}

func (s *Session) warnForeign(e resolve.Expr) {
	if e.Foreign(s.drive.Name) {
		s.logger.Warn("Path names another drive, using the active one",
			zap.String("session", s.id.String()),
			zap.String("requested", e.Drive),
			zap.String("active", s.drive.Name))
	}
}

func (s *Session) notFound(err error) types.Result {
	var nf *resolve.NotFoundError
	if errors.As(err, &nf) {
		s.logger.Debug("Path component not found",
			zap.String("session", s.id.String()),
			zap.String("missing", nf.Missing()))
	}
	return types.Failure(types.CodeNotFound, resolve.ErrNotFound.Error())
}
