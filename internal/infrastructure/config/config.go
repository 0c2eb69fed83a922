package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/vdrive/internal/shared/paths"
	"github.com/GriffinCanCode/vdrive/internal/shared/utils"
)

// EnvPrefix prefixes every environment variable, e.g. VDRIVE_DRIVE_LABEL
const EnvPrefix = "VDRIVE"

// Config holds all application configuration.
type Config struct {
	Drive   DriveConfig   `toml:"drive" yaml:"drive"`
	Storage StorageConfig `toml:"storage" yaml:"storage"`
	Logging LogConfig     `toml:"logging" yaml:"logging"`
	Metrics MetricsConfig `toml:"metrics" yaml:"metrics"`
}

// DriveConfig selects the active drive.
type DriveConfig struct {
	Label string `toml:"label" yaml:"label"`
}

// StorageConfig locates persisted state. Empty directories are derived
// from DataDir.
type StorageConfig struct {
	DataDir           string `toml:"data_dir" yaml:"data_dir" split_words:"true"`
	DrivesDir         string `toml:"drives_dir" yaml:"drives_dir" split_words:"true"`
	DriveFile         string `toml:"drive_file" yaml:"drive_file" split_words:"true"`
	RecordsDir        string `toml:"records_dir" yaml:"records_dir" split_words:"true"`
	RecordsFile       string `toml:"records_file" yaml:"records_file" split_words:"true"`
	BackupDir         string `toml:"backup_dir" yaml:"backup_dir" split_words:"true"`
	Format            string `toml:"format" yaml:"format"`
	BackupCompression string `toml:"backup_compression" yaml:"backup_compression" split_words:"true"`
}

// LogConfig holds diagnostic logging configuration.
type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
	File        string `toml:"file" yaml:"file"`
	MaxSizeMB   int    `toml:"max_size_mb" yaml:"max_size_mb" split_words:"true"`
	MaxBackups  int    `toml:"max_backups" yaml:"max_backups" split_words:"true"`
	MaxAgeDays  int    `toml:"max_age_days" yaml:"max_age_days" split_words:"true"`
	Compress    bool   `toml:"compress" yaml:"compress"`
}

// MetricsConfig holds the optional metrics endpoint. An empty Addr
// disables it.
type MetricsConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

// Load builds configuration in layers: defaults, then the optional file at
// path (TOML or YAML by extension), then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads configuration or returns default.
func LoadOrDefault(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	layout := paths.NewLayout(paths.DefaultDataDir)
	return &Config{
		Drive: DriveConfig{
			Label: "C:",
		},
		Storage: StorageConfig{
			DataDir:           paths.DefaultDataDir,
			Format:            "json",
			BackupCompression: "none",
		},
		Logging: LogConfig{
			Level:      "info",
			File:       layout.DiagnosticsPath(),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Validate rejects settings the rest of the program cannot act on.
func (c *Config) Validate() error {
	if err := utils.ValidateDriveLabel(c.Drive.Label); err != nil {
		return fmt.Errorf("invalid drive label: %w", err)
	}
	switch strings.ToLower(c.Storage.Format) {
	case "json", "yaml", "yml", "toml":
	default:
		return fmt.Errorf("invalid storage format %q: want json, yaml or toml", c.Storage.Format)
	}
	switch strings.ToLower(c.Storage.BackupCompression) {
	case "", "none", "gzip", "zstd":
	default:
		return fmt.Errorf("invalid backup compression %q: want none, gzip or zstd", c.Storage.BackupCompression)
	}
	return nil
}

// Layout returns the data directory layout storage paths derive from.
func (s StorageConfig) Layout() paths.Layout {
	return paths.NewLayout(s.DataDir)
}

// Dirs returns the drives, records and backup directories, filling empty
// ones from the data directory.
func (s StorageConfig) Dirs() (drives, records, backups string) {
	layout := s.Layout()
	drives, records, backups = s.DrivesDir, s.RecordsDir, s.BackupDir
	if drives == "" {
		drives = layout.DrivesDir()
	}
	if records == "" {
		records = layout.RecordsDir()
	}
	if backups == "" {
		backups = layout.BackupsDir()
	}
	return drives, records, backups
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		return fmt.Errorf("unsupported config file type %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
