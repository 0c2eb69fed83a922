// Package server exposes an optional HTTP endpoint for operators.
//
// Routes:
//   - GET /healthz: liveness
//   - GET /metrics: Prometheus exposition of the monitoring registry
//   - GET /metrics/json: current values as JSON
//
// The shell runs on stdin and stdout; the server only starts when a
// metrics address is configured.
package server
