// Package config provides layered configuration for vdrive.
//
// Values are resolved in order, later layers winning:
//   - Defaults from Default()
//   - An optional TOML or YAML file
//   - Environment variables prefixed with VDRIVE_
//   - Command-line flags, applied by the caller
//
// Configuration Sections:
//   - Drive: the active drive label
//   - Storage: data directory, persisted format, backup compression
//   - Logging: diagnostic log level, format and rotating file
//   - Metrics: optional address of the metrics endpoint
//
// Example Usage:
//
//	cfg, err := config.Load("vdrive.toml")
//	if err != nil {
//		return err
//	}
//	drives, records, backups := cfg.Storage.Dirs()
//
// Environment Variables:
//   - VDRIVE_DRIVE_LABEL
//   - VDRIVE_STORAGE_DATA_DIR, VDRIVE_STORAGE_FORMAT, VDRIVE_STORAGE_BACKUP_COMPRESSION
//   - VDRIVE_LOGGING_LEVEL, VDRIVE_LOGGING_DEVELOPMENT, VDRIVE_LOGGING_FILE
//   - VDRIVE_METRICS_ADDR
package config
