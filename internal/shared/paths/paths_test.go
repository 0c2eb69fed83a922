package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayout(t *testing.T) {
	l := NewLayout("/srv/vdrive")

	assert.Equal(t, filepath.Join("/srv/vdrive", "drives"), l.DrivesDir())
	assert.Equal(t, filepath.Join("/srv/vdrive", "records"), l.RecordsDir())
	assert.Equal(t, filepath.Join("/srv/vdrive", "backups"), l.BackupsDir())
	assert.Equal(t, filepath.Join("/srv/vdrive", "logs", "vdrive.log"), l.DiagnosticsPath())
}

func TestNewLayoutDefault(t *testing.T) {
	assert.Equal(t, DefaultDataDir, NewLayout("").Root)
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "C.json", DriveFileName("C:", ".json"))
	assert.Equal(t, "records.yaml", RecordsFileName(".yaml"))
	assert.Equal(t, "deleted-folder_My Docs_drive-C.json", BackupFileName("My Docs", "C:", ".json"))
	assert.Equal(t, "D", LabelStem("D:"))
}
