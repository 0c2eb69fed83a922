package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// FileExtension is the only extension a file may carry
const FileExtension = ".txt"

// NamePattern allows ASCII letters, digits and any Unicode white space,
// including no-break and ideographic spaces. It applies to whole folder
// names and to file names without their extension.
var NamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\v\p{Zs}\x{1c}-\x{1f}\x{85}\x{2028}\x{2029}]*$`)

// DriveLabelPattern matches labels such as "C:"
var DriveLabelPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*:$`)

var (
	ErrEmptyName        = errors.New("Name cannot be empty.")
	ErrInvalidName      = errors.New("Name contains invalid characters. Allowed characters: letters a-z and A-Z, blank spaces and digits 0-9.")
	ErrMissingExtension = fmt.Errorf("The file name does not have the '%s' extension.", FileExtension)
	ErrInvalidLabel     = errors.New("drive label must be a letter followed by ':'")
)

// ValidateFolderName checks a folder name against NamePattern
func ValidateFolderName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !NamePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// ValidateFileName checks the extension first, then the base name
func ValidateFileName(name string) error {
	if !strings.HasSuffix(name, FileExtension) {
		return ErrMissingExtension
	}

	base := strings.TrimSuffix(name, FileExtension)
	if base == "" {
		return ErrEmptyName
	}
	if !NamePattern.MatchString(base) {
		return ErrInvalidName
	}
	return nil
}

// ValidateDriveLabel checks a drive label such as "C:"
func ValidateDriveLabel(label string) error {
	if !DriveLabelPattern.MatchString(label) {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	return nil
}
