package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
	"github.com/GriffinCanCode/vdrive/internal/shared/types"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Command metrics
	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec

	// Tree metrics
	Entries   *prometheus.GaugeVec
	TreeDepth prometheus.Gauge

	// Persistence metrics
	PersistDuration *prometheus.HistogramVec
	BackupsTotal    prometheus.Counter

	// Audit log metrics
	LogDepth *prometheus.GaugeVec

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	// Snapshot for JSON API - track current values
	snapshot Snapshot

	mu sync.RWMutex
}

// Snapshot holds current metric values for JSON API
type Snapshot struct {
	Commands      int64   `json:"commands"`
	Failures      int64   `json:"failures"`
	Folders       int     `json:"folders"`
	Files         int     `json:"files"`
	Bytes         int     `json:"bytes"`
	Backups       int64   `json:"backups"`
	Operations    int     `json:"operations"`
	Errors        int     `json:"errors"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewMetrics creates a metrics collector on its own registry, with the Go
// runtime and process collectors attached
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return NewMetricsWith(reg)
}

// NewMetricsWith registers every metric on reg
func NewMetricsWith(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		// Command metrics
		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vdrive_commands_total",
				Help: "Total number of shell commands by verb and outcome",
			},
			[]string{"verb", "outcome"},
		),
		CommandDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vdrive_command_duration_seconds",
				Help:    "Shell command duration in seconds, including persistence",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"verb"},
		),

		// Tree metrics
		Entries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vdrive_entries",
				Help: "Number of entries on the active drive by kind",
			},
			[]string{"kind"},
		),
		TreeDepth: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "vdrive_tree_depth",
				Help: "Deepest nesting level on the active drive",
			},
		),

		// Persistence metrics
		PersistDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vdrive_persist_duration_seconds",
				Help:    "Time spent writing persisted state in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"target"},
		),
		BackupsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "vdrive_backups_total",
				Help: "Total number of drive snapshots taken before folder deletions",
			},
		),

		// Audit log metrics
		LogDepth: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vdrive_log_depth",
				Help: "Number of entries on each audit log stack",
			},
			[]string{"stack"},
		),

		// HTTP metrics
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vdrive_http_requests_total",
				Help: "Total number of HTTP requests to the metrics endpoint",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vdrive_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// System metrics
		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "vdrive_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}

	return m
}

// Registry returns the registry the metrics live on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveCommand records one executed shell command
func (m *Metrics) ObserveCommand(verb string, code types.Code, d time.Duration) {
	m.CommandsTotal.WithLabelValues(verb, string(code)).Inc()
	m.CommandDuration.WithLabelValues(verb).Observe(d.Seconds())

	m.mu.Lock()
	m.snapshot.Commands++
	if code != types.CodeOK {
		m.snapshot.Failures++
	}
	m.mu.Unlock()
}

// ObservePersist records the duration of a save
func (m *Metrics) ObservePersist(target string, d time.Duration) {
	m.PersistDuration.WithLabelValues(target).Observe(d.Seconds())
}

// ObserveBackup counts a snapshot taken before a deletion
func (m *Metrics) ObserveBackup() {
	m.BackupsTotal.Inc()

	m.mu.Lock()
	m.snapshot.Backups++
	m.mu.Unlock()
}

// ObserveTree sets the entry gauges from drive statistics
func (m *Metrics) ObserveTree(stats tree.Stats) {
	m.Entries.WithLabelValues(tree.KindFolder.String()).Set(float64(stats.Folders))
	m.Entries.WithLabelValues(tree.KindFile.String()).Set(float64(stats.Files))
	m.TreeDepth.Set(float64(stats.Depth))

	m.mu.Lock()
	m.snapshot.Folders = stats.Folders
	m.snapshot.Files = stats.Files
	m.snapshot.Bytes = stats.Bytes
	m.mu.Unlock()
}

// ObserveLog sets the audit log depth gauges
func (m *Metrics) ObserveLog(operations, errors int) {
	m.LogDepth.WithLabelValues("operations").Set(float64(operations))
	m.LogDepth.WithLabelValues("errors").Set(float64(errors))

	m.mu.Lock()
	m.snapshot.Operations = operations
	m.snapshot.Errors = errors
	m.mu.Unlock()
}

// RecordHTTPRequest records an HTTP request to the metrics endpoint
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Snapshot returns current values for the JSON API
func (m *Metrics) Snapshot() Snapshot {
	m.updateUptime()

	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.snapshot
	s.UptimeSeconds = time.Since(m.startTime).Seconds()
	return s
}

// updateUptime updates the uptime metric
func (m *Metrics) updateUptime() {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}
