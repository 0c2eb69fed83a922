package paths

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Default data directory, relative to the working directory of the process
const DefaultDataDir = "data"

// Subdirectories of the data directory
const (
	Drives  = "drives"
	Records = "records"
	Backups = "backups"
	Logs    = "logs"
)

// File names inside the data directory
const (
	RecordsFile     = "records"
	DiagnosticsFile = "vdrive.log"
)

// Layout returns the standard locations under a data directory
type Layout struct {
	Root string
}

// NewLayout returns the layout rooted at dataDir
func NewLayout(dataDir string) Layout {
	if dataDir == "" {
		dataDir = DefaultDataDir
	}
	return Layout{Root: dataDir}
}

// DrivesDir holds one persisted tree per drive
func (l Layout) DrivesDir() string {
	return filepath.Join(l.Root, Drives)
}

// RecordsDir holds the persisted audit log
func (l Layout) RecordsDir() string {
	return filepath.Join(l.Root, Records)
}

// BackupsDir holds snapshots taken before folder deletions
func (l Layout) BackupsDir() string {
	return filepath.Join(l.Root, Backups)
}

// LogsDir holds the rotating diagnostic log
func (l Layout) LogsDir() string {
	return filepath.Join(l.Root, Logs)
}

// DiagnosticsPath is the default diagnostic log file
func (l Layout) DiagnosticsPath() string {
	return filepath.Join(l.LogsDir(), DiagnosticsFile)
}

// DriveFileName returns the file name of a drive's tree, e.g. "C.json"
func DriveFileName(label, ext string) string {
	return LabelStem(label) + ext
}

// RecordsFileName returns the file name of the audit log, e.g. "records.json"
func RecordsFileName(ext string) string {
	return RecordsFile + ext
}

// BackupFileName encodes the deleted folder and the drive it lived on.
// The same folder name on the same drive always maps to the same file.
func BackupFileName(folderName, label, ext string) string {
	return fmt.Sprintf("deleted-folder_%s_drive-%s%s", folderName, LabelStem(label), ext)
}

// LabelStem strips the trailing colon from a drive label ("C:" -> "C")
func LabelStem(label string) string {
	return strings.TrimSuffix(label, ":")
}
