package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/osse101/InventoryApp_Go/internal/config"
	"github.com/osse101/InventoryApp_Go/internal/logger"
)

// SetupLogger initializes slog from cfg. When cfg.LogDir is set, output is
// also written to a timestamped session file there and old session files are
// pruned. The returned file is nil without a log directory; the caller closes it.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateLogsDirFailed, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenLogFileFailed, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	addSource := cfg.Environment == "dev" || cfg.Environment == "development"
	logger.InitLoggerWithWriter(
		logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, version, cfg.Environment, addSource),
		out,
	)

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", version)
	slog.Debug(LogMsgConfigurationLoaded,
		"storage", cfg.StorageDriver,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	slices.Sort(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
