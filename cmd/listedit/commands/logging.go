package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const logLevelEnv = "LISTEDIT_LOG_LEVEL"

// initLogging installs a text slog handler on w as the default logger. The
// level comes from LISTEDIT_LOG_LEVEL and defaults to info.
func initLogging(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(strings.TrimSpace(os.Getenv(logLevelEnv))) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
