// Package logging provides structured diagnostic logging using uber/zap.
//
// This package offers two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Output goes to a rotating file managed by lumberjack, or to stderr when no
// file is configured. It never goes to stdout: that stream carries the
// interactive shell.
//
// The diagnostic log is separate from the audit log the shell keeps for the
// user.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "debug", File: "data/logs/vdrive.log"})
//	if err != nil {
//		return err
//	}
//	defer logger.Close()
//	logger.Info("Session opened", zap.String("drive", "C:"))
package logging
