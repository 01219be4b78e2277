package logger

import "log/slog"

// Two levels beyond slog's built-in four, spaced the same way slog spaces
// its own.
const (
	levelTrace    = slog.LevelDebug - 4
	levelCritical = slog.LevelError + 4
)

func getLevelName(level slog.Leveler) string {
	switch level {
	case levelTrace:
		return "TRACE"
	case levelCritical:
		return "CRITICAL"
	default:
		return level.Level().String()
	}
}
