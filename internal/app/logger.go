package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LogLevels lists the accepted -log-level values from most to least verbose.
var LogLevels = []string{"debug", "info", "warn", "error"}

// LogFormats lists the accepted -log-format values.
var LogFormats = []string{"text", "json"}

var logLevelValues = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel maps a level name onto a slog.Level. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	level, ok := logLevelValues[strings.ToLower(s)]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: must be one of %s", s, strings.Join(LogLevels, ", "))
	}
	return level, nil
}

// ParseLogFormat normalizes a log format name. Empty means text.
func ParseLogFormat(s string) (string, error) {
	if s == "" {
		return "text", nil
	}
	f := strings.ToLower(s)
	for _, known := range LogFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown log format %q: must be one of %s", s, strings.Join(LogFormats, ", "))
}

// newLogger builds an isolated logger; the global slog default is left alone.
// An unknown level is reported on the returned logger instead of being dropped.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, levelErr := ParseLogLevel(levelStr)
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format, _ := ParseLogFormat(formatStr); format == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	logger := slog.New(handler)
	if levelErr != nil {
		logger.Warn("Falling back to info logging.", "error", levelErr)
	}
	return logger
}
