package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

var (
	debugEnabled atomic.Bool
	level        = new(slog.LevelVar)
)

// Setup installs the default slog logger writing to w.
func Setup(w io.Writer, color bool) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !color,
		}),
	))
}

// LevelFromEnv applies DARKCIRCLES_LOG_LEVEL when it names a valid level.
func LevelFromEnv() {
	raw := strings.TrimSpace(os.Getenv("DARKCIRCLES_LOG_LEVEL"))
	if raw == "" {
		return
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(raw)); err != nil {
		slog.Warn("ignoring invalid log level", "value", raw)
		return
	}
	level.Set(l)
	if l <= slog.LevelDebug {
		debugEnabled.Store(true)
	}
}

// EnableDebug turns on verbose debug logging for the application lifecycle.
func EnableDebug() {
	debugEnabled.Store(true)
	level.Set(slog.LevelDebug)
	slog.Debug("debug logging enabled")
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf emits a formatted debug log message when debugging is enabled.
func Debugf(format string, args ...any) {
	if !DebugEnabled() {
		return
	}
	slog.Debug(fmt.Sprintf(format, args...))
}
