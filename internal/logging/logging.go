// Package logging holds the process-wide slog logger used by native builds
// (the sitectl CLI and tests). Browser builds log through the js console instead.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
	output     io.Writer = os.Stderr
)

// SetOutput redirects log output. It must be called before the first Get.
func SetOutput(w io.Writer) {
	output = w
}

// Get returns the shared logger, creating it on first use.
func Get() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		levelVar.Set(slog.LevelInfo)

		handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// SetLevel changes the minimum level of the shared logger.
func SetLevel(level slog.Level) {
	Get()
	levelVar.Set(level)
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetRawLogLevel is SetLevel(ParseLevel(raw)).
func SetRawLogLevel(raw string) {
	SetLevel(ParseLevel(raw))
}
