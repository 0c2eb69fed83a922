package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/vdrive/internal/domain/session"
	"github.com/GriffinCanCode/vdrive/internal/infrastructure/config"
	"github.com/GriffinCanCode/vdrive/internal/infrastructure/logging"
	"github.com/GriffinCanCode/vdrive/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/vdrive/internal/infrastructure/persistence"
	"github.com/GriffinCanCode/vdrive/internal/infrastructure/server"
	"github.com/GriffinCanCode/vdrive/internal/shell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "vdrive: %v\n", err)
		os.Exit(1)
	}
}

// run wires configuration, logging, storage and metrics around one shell
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		File:        cfg.Logging.File,
		MaxSizeMB:   cfg.Logging.MaxSizeMB,
		MaxBackups:  cfg.Logging.MaxBackups,
		MaxAgeDays:  cfg.Logging.MaxAgeDays,
		Compress:    cfg.Logging.Compress,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	drives, records, backups := cfg.Storage.Dirs()
	store, err := persistence.NewStore(afero.NewOsFs(), persistence.Options{
		DrivesDir:   drives,
		DriveFile:   cfg.Storage.DriveFile,
		RecordsDir:  records,
		RecordsFile: cfg.Storage.RecordsFile,
		BackupDir:   backups,
		Format:      cfg.Storage.Format,
		Compression: cfg.Storage.BackupCompression,
	})
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}

	metrics := monitoring.NewMetrics()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Metrics.Addr != "" {
		srv := server.New(cfg.Metrics.Addr, metrics, logger.Logger)
		if _, err := srv.Start(ctx); err != nil {
			return err
		}
	}

	s, opened, err := session.Open(ctx, cfg.Drive.Label, store, session.Options{
		Logger:   logger.Logger,
		Observer: metrics,
	})
	if err != nil {
		logger.Error("Failed to open session", zap.Error(err))
		return err
	}

	sh := shell.New(s, stdin, stdout, shell.Options{Logger: logger.Logger, Recorder: metrics})
	sh.Announce(opened, store.DrivePath(s.Drive().Name), store.LogPath())

	// the shell blocks on input, so a signal must not wait for the next line
	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("Shell stopped", zap.String("session", s.ID().String()), zap.Error(err))
		}
		return err
	case <-ctx.Done():
		logger.Info("Interrupted", zap.String("session", s.ID().String()))
		return ctx.Err()
	}
}

// loadConfig layers flags over the file and environment configuration
func loadConfig(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("vdrive", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", os.Getenv("VDRIVE_CONFIG"), "Config file (.toml or .yaml)")
	label := fs.String("drive", "", "Drive label, e.g. C:")
	dataDir := fs.String("data", "", "Data directory")
	format := fs.String("format", "", "Persisted format: json, yaml or toml")
	compression := fs.String("backup-compression", "", "Backup compression: none, gzip or zstd")
	logLevel := fs.String("log-level", "", "Diagnostic log level")
	logFile := fs.String("log-file", "", "Diagnostic log file")
	dev := fs.Bool("dev", false, "Development logging")
	metricsAddr := fs.String("metrics-addr", "", "Serve /metrics and /healthz on this address")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "drive":
			cfg.Drive.Label = *label
		case "data":
			cfg.Storage.DataDir = *dataDir
		case "format":
			cfg.Storage.Format = *format
		case "backup-compression":
			cfg.Storage.BackupCompression = *compression
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-file":
			cfg.Logging.File = *logFile
		case "dev":
			cfg.Logging.Development = *dev
		case "metrics-addr":
			cfg.Metrics.Addr = *metricsAddr
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
