package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/CardHeist_Go/internal/config"
	"github.com/osse101/CardHeist_Go/internal/logger"
)

// SetupLogger installs the process logger. With LOG_DIR set it writes to
// stdout and a timestamped session file, pruning older sessions.
// The returned closer is nil when no file was opened.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.Version, cfg.Environment, cfg.IsDev())

	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf(ErrMsgCreateLogDir, err)
		}
		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", cfg.LogFormat, "file", logFile != nil)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageDriver,
		"dev_mode", cfg.DevMode)
	slog.Debug(LogMsgConfigLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"drop_cooldown", cfg.DropCooldown,
		"theft_cooldown", cfg.TheftCooldown)
	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}

	if logFile == nil {
		return nil, nil
	}
	return logFile, nil
}

// cleanupLogs removes the oldest session files so at most keep remain.
// Session names sort chronologically.
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
	sort.Strings(names)

	for len(names) > keep {
		if err := os.Remove(filepath.Join(logDir, names[0])); err != nil {
			slog.Warn(LogMsgLogCleanupFailed, "file", names[0], "error", err)
		}
		names = names[1:]
	}
}
