// Command vdrive is an interactive shell over an in-memory drive that is
// persisted between runs.
//
// Usage:
//
//	vdrive [-config vdrive.toml] [-drive C:] [-data data] [-format json|yaml|toml]
//	       [-backup-compression none|gzip|zstd] [-log-level info] [-log-file path]
//	       [-dev] [-metrics-addr :9090]
//
// Flags override environment variables, which override the config file.
// Diagnostics go to the log file, never to stdout.
package main
