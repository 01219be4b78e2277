package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shuldan/standalone/pkg/contracts"
)

type slogLogger struct {
	*slog.Logger
}

// NewLogger builds a contracts.Logger over slog. The default is the compact
// text handler on stdout at Info; see the options for JSON output, level,
// writer and color.
func NewLogger(opts ...Option) (contracts.Logger, error) {
	cfg := &config{
		level:  slog.LevelInfo,
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var handler slog.Handler
	if cfg.json {
		handler = slog.NewJSONHandler(cfg.writer, &slog.HandlerOptions{
			Level:       cfg.level,
			ReplaceAttr: renameCustomLevels,
		})
	} else {
		colored := cfg.color && isTerminal(cfg.writer)
		handler = newTextHandler(cfg.writer, colored, cfg.level)
	}

	return &slogLogger{Logger: slog.New(handler)}, nil
}

// renameCustomLevels keeps the JSON handler from printing the two
// out-of-range levels as DEBUG-4 / ERROR+4.
func renameCustomLevels(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok {
			return slog.String(slog.LevelKey, getLevelName(level))
		}
	}
	return a
}

func (l *slogLogger) Trace(msg string, args ...any) {
	l.LogAttrs(context.Background(), levelTrace, msg, attrsFromArgs(args)...)
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.LogAttrs(context.Background(), slog.LevelDebug, msg, attrsFromArgs(args)...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.LogAttrs(context.Background(), slog.LevelInfo, msg, attrsFromArgs(args)...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.LogAttrs(context.Background(), slog.LevelWarn, msg, attrsFromArgs(args)...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.LogAttrs(context.Background(), slog.LevelError, msg, attrsFromArgs(args)...)
}

func (l *slogLogger) Critical(msg string, args ...any) {
	l.LogAttrs(context.Background(), levelCritical, msg, attrsFromArgs(args)...)
}

func (l *slogLogger) With(args ...any) contracts.Logger {
	return &slogLogger{Logger: l.Logger.With(args...)}
}

// attrsFromArgs pairs up alternating key/value args the way slog does,
// flagging stray values with !BADKEY rather than dropping them.
func attrsFromArgs(args []any) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(args)/2+1)
	for len(args) > 0 {
		if len(args) == 1 {
			attrs = append(attrs, slog.Any("!BADKEY", args[0]))
			break
		}
		key, ok := args[0].(string)
		if !ok {
			attrs = append(attrs, slog.Any("!BADKEY", args[0]))
			args = args[1:]
			continue
		}
		attrs = append(attrs, slog.Any(key, args[1]))
		args = args[2:]
	}
	return attrs
}
