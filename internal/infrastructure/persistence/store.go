package persistence

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/GriffinCanCode/vdrive/internal/domain/audit"
	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
	"github.com/GriffinCanCode/vdrive/internal/shared/paths"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Options locates the persisted artifacts
type Options struct {
	DrivesDir   string
	DriveFile   string // overrides the file name derived from the label
	RecordsDir  string
	RecordsFile string // overrides the file name derived from the format
	BackupDir   string
	Format      string
	Compression string
}

// Store reads and writes drives, the audit log and deletion backups.
// Every save overwrites the whole file.
type Store struct {
	fs          afero.Fs
	codec       Codec
	compression Compression
	opts        Options
}

// NewStore binds a store to a filesystem. Pass afero.NewOsFs() for disk
// or afero.NewMemMapFs() for tests.
func NewStore(fsys afero.Fs, opts Options) (*Store, error) {
	codec, err := NewCodec(opts.Format)
	if err != nil {
		return nil, err
	}
	compression, err := ParseCompression(opts.Compression)
	if err != nil {
		return nil, err
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	layout := paths.NewLayout("")
	if opts.DrivesDir == "" {
		opts.DrivesDir = layout.DrivesDir()
	}
	if opts.RecordsDir == "" {
		opts.RecordsDir = layout.RecordsDir()
	}
	if opts.BackupDir == "" {
		opts.BackupDir = layout.BackupsDir()
	}

	return &Store{fs: fsys, codec: codec, compression: compression, opts: opts}, nil
}

// Codec returns the codec used for every artifact
func (s *Store) Codec() Codec {
	return s.codec
}

// DrivePath returns where a drive's tree is persisted
func (s *Store) DrivePath(label string) string {
	name := s.opts.DriveFile
	if name == "" {
		name = paths.DriveFileName(label, s.codec.Ext())
	}
	return filepath.Join(s.opts.DrivesDir, name)
}

// LogPath returns where the audit log is persisted
func (s *Store) LogPath() string {
	name := s.opts.RecordsFile
	if name == "" {
		name = paths.RecordsFileName(s.codec.Ext())
	}
	return filepath.Join(s.opts.RecordsDir, name)
}

// BackupPath returns the snapshot location for a folder on a drive
func (s *Store) BackupPath(folderName, label string) string {
	ext := s.codec.Ext() + s.compression.Ext()
	return filepath.Join(s.opts.BackupDir, paths.BackupFileName(folderName, label, ext))
}

// LoadDrive reads a drive. When no file exists a fresh empty drive stamped
// with timestamp is returned and created reports true. Unreadable or
// malformed files are errors, as is a file holding a drive other than label.
func (s *Store) LoadDrive(ctx context.Context, label, timestamp string) (drive *tree.Folder, created bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path := s.DrivePath(label)
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return tree.NewDrive(label, timestamp), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read drive %s: %w", path, err)
	}

	drive, err = DecodeDrive(s.codec, data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode drive %s: %w", path, err)
	}
	// saves go to DrivePath(drive.Name), which must be the file just read
	if drive.Name != label {
		return nil, false, fmt.Errorf("failed to decode drive %s: %w: holds drive %q, want %q",
			path, ErrMalformed, drive.Name, label)
	}
	return drive, false, nil
}

// SaveDrive overwrites the persisted tree of a drive
func (s *Store) SaveDrive(ctx context.Context, drive *tree.Folder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := EncodeDrive(s.codec, drive)
	if err != nil {
		return fmt.Errorf("failed to encode drive %s: %w", drive.Name, err)
	}
	return s.write(s.DrivePath(drive.Name), data)
}

// LoadLog reads the audit log, or returns an empty one with created set
// when no file exists.
func (s *Store) LoadLog(ctx context.Context) (log *audit.Log, created bool, err error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	path := s.LogPath()
	data, err := afero.ReadFile(s.fs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return audit.New(), true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read log %s: %w", path, err)
	}

	log, err = DecodeLog(s.codec, data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode log %s: %w", path, err)
	}
	return log, false, nil
}

// SaveLog overwrites the persisted audit log
func (s *Store) SaveLog(ctx context.Context, log *audit.Log) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := EncodeLog(s.codec, log)
	if err != nil {
		return fmt.Errorf("failed to encode log: %w", err)
	}
	return s.write(s.LogPath(), data)
}

// Backup snapshots the whole drive before a folder is deleted from it.
// A later deletion of a folder with the same name overwrites the snapshot.
func (s *Store) Backup(ctx context.Context, drive *tree.Folder, folderName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := EncodeDrive(s.codec, drive)
	if err != nil {
		return "", fmt.Errorf("failed to encode backup: %w", err)
	}
	data, err = s.compression.compress(data)
	if err != nil {
		return "", err
	}

	path := s.BackupPath(folderName, drive.Name)
	if err := s.write(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// ReadBackup decodes a snapshot written by Backup. The compression is
// inferred from the file name.
func (s *Store) ReadBackup(ctx context.Context, path string) (*tree.Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup %s: %w", path, err)
	}
	data, err = compressionFor(path).decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress backup %s: %w", path, err)
	}
	return DecodeDrive(s.codec, data)
}

func (s *Store) write(path string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
