/*
Package monitoring provides metrics collection for the shell.

# Overview

Metrics live on a private Prometheus registry so tests and embedders can
create as many collectors as they like. Metrics implements the observer
interfaces of the session and shell packages.

# Metrics

  - vdrive_commands_total{verb,outcome}
  - vdrive_command_duration_seconds{verb}
  - vdrive_entries{kind}, vdrive_tree_depth
  - vdrive_persist_duration_seconds{target}
  - vdrive_backups_total
  - vdrive_log_depth{stack}
  - vdrive_http_requests_total, vdrive_http_request_duration_seconds
  - vdrive_uptime_seconds

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))
*/
package monitoring
