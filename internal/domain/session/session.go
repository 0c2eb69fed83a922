package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/vdrive/internal/domain/audit"
	"github.com/GriffinCanCode/vdrive/internal/domain/resolve"
	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
	"github.com/GriffinCanCode/vdrive/internal/shared/id"
	"github.com/GriffinCanCode/vdrive/internal/shared/types"
)

// Store persists the drive, the audit log and deletion backups
type Store interface {
	LoadDrive(ctx context.Context, label, timestamp string) (*tree.Folder, bool, error)
	SaveDrive(ctx context.Context, drive *tree.Folder) error
	LoadLog(ctx context.Context) (*audit.Log, bool, error)
	SaveLog(ctx context.Context, log *audit.Log) error
	Backup(ctx context.Context, drive *tree.Folder, folderName string) (string, error)
	DrivePath(label string) string
	LogPath() string
}

// Observer receives measurements. monitoring.Metrics implements it.
type Observer interface {
	ObservePersist(target string, d time.Duration)
	ObserveBackup()
	ObserveTree(stats tree.Stats)
	ObserveLog(operations, errors int)
}

type nopObserver struct{}

func (nopObserver) ObservePersist(string, time.Duration) {}
func (nopObserver) ObserveBackup()                       {}
func (nopObserver) ObserveTree(tree.Stats)               {}
func (nopObserver) ObserveLog(int, int)                  {}

// Options configures a session
type Options struct {
	Clock    types.Clock
	Logger   *zap.Logger
	Observer Observer
}

// Session is the state of one shell: the active drive, the working
// location and the audit log. It is not safe for concurrent use.
type Session struct {
	id       id.SessionID
	drive    *tree.Folder
	wd       resolve.Working
	log      *audit.Log
	store    Store
	clock    types.Clock
	logger   *zap.Logger
	observer Observer
}

// Opened reports which persisted artifacts did not exist and were created
type Opened struct {
	DriveCreated bool
	LogCreated   bool
}

// Open loads the drive and the audit log, creating and saving empty ones
// when nothing is persisted yet. Malformed files are returned as errors.
func Open(ctx context.Context, label string, store Store, opts Options) (*Session, Opened, error) {
	s := newSession(store, opts)
	var opened Opened

	drive, created, err := store.LoadDrive(ctx, label, s.now())
	if err != nil {
		return nil, opened, fmt.Errorf("failed to load drive %s: %w", label, err)
	}
	s.drive = drive
	s.wd = resolve.Root(drive.Name)
	opened.DriveCreated = created
	if created {
		if err := s.saveDrive(ctx); err != nil {
			return nil, opened, err
		}
	}

	log, created, err := store.LoadLog(ctx)
	if err != nil {
		return nil, opened, fmt.Errorf("failed to load log: %w", err)
	}
	s.log = log
	opened.LogCreated = created
	if created {
		if err := s.saveLog(ctx); err != nil {
			return nil, opened, err
		}
	}

	s.observer.ObserveTree(s.drive.Stats())
	s.observer.ObserveLog(s.log.Depth())
	s.logger.Info("Session opened",
		zap.String("session", s.id.String()),
		zap.String("drive", s.drive.Name),
		zap.Bool("drive_created", opened.DriveCreated),
		zap.Bool("log_created", opened.LogCreated))
	return s, opened, nil
}

// New wraps an in-memory drive and log without loading anything
func New(drive *tree.Folder, log *audit.Log, store Store, opts Options) *Session {
	s := newSession(store, opts)
	s.drive = drive
	s.wd = resolve.Root(drive.Name)
	s.log = log
	return s
}

func newSession(store Store, opts Options) *Session {
	s := &Session{
		id:       id.NewSessionID(),
		store:    store,
		clock:    opts.Clock,
		logger:   opts.Logger,
		observer: opts.Observer,
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	return s
}

// ID identifies the session in diagnostic logs
func (s *Session) ID() id.SessionID {
	return s.id
}

// Drive returns the active drive
func (s *Session) Drive() *tree.Folder {
	return s.drive
}

// Working returns the current working location
func (s *Session) Working() resolve.Working {
	return s.wd
}

// Log returns the audit log
func (s *Session) Log() *audit.Log {
	return s.log
}

// Prompt is the text shown before each command
func (s *Session) Prompt() string {
	return s.wd.Prompt()
}

// Record appends the outcome of a command line to the audit log and saves
// the log. Successes go to the operations, failures to the errors.
func (s *Session) Record(ctx context.Context, input string, r types.Result) error {
	stamp := s.now()
	if r.Failed() {
		s.log.PushError(audit.ErrorEntry(stamp, input, r.Message))
	} else {
		s.log.PushOperation(audit.OperationEntry(stamp, input))
	}
	return s.saveLog(ctx)
}

func (s *Session) now() string {
	return types.Stamp(s.clock())
}

func (s *Session) saveDrive(ctx context.Context) error {
	start := time.Now()
	err := s.store.SaveDrive(ctx, s.drive)
	s.observer.ObservePersist("drive", time.Since(start))
	if err != nil {
		s.logger.Error("Failed to save drive",
			zap.String("session", s.id.String()),
			zap.String("path", s.store.DrivePath(s.drive.Name)),
			zap.Error(err))
		return fmt.Errorf("failed to save drive: %w", err)
	}
	s.observer.ObserveTree(s.drive.Stats())
	return nil
}

func (s *Session) saveLog(ctx context.Context) error {
	start := time.Now()
	err := s.store.SaveLog(ctx, s.log)
	s.observer.ObservePersist("log", time.Since(start))
	if err != nil {
		s.logger.Error("Failed to save log",
			zap.String("session", s.id.String()),
			zap.String("path", s.store.LogPath()),
			zap.Error(err))
		return fmt.Errorf("failed to save log: %w", err)
	}
	s.observer.ObserveLog(s.log.Depth())
	return nil
}
