package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// textHandler writes one compact line per record:
//
//	INFO application started mode="Dev" id="..."
//
// Group names qualify attribute keys with dots instead of nesting.
type textHandler struct {
	writer  io.Writer
	attrs   []slog.Attr
	groups  []string
	colored bool
	level   slog.Level
}

func newTextHandler(writer io.Writer, colored bool, level slog.Level) slog.Handler {
	return &textHandler{
		writer:  writer,
		colored: colored,
		level:   level,
	}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, r slog.Record) error {
	name := getLevelName(r.Level)
	if h.colored {
		name = colorize(name, r.Level)
	}

	_, _ = fmt.Fprintf(h.writer, "%s %s", name, r.Message)

	for _, a := range h.attrs {
		h.printAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.printAttr(a)
		return true
	})

	_, _ = fmt.Fprintln(h.writer)
	return nil
}

func (h *textHandler) printAttr(a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if len(h.groups) > 0 {
		key = strings.Join(h.groups, ".") + "." + key
	}
	_, _ = fmt.Fprintf(h.writer, " %s=%q", key, a.Value)
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	clone.attrs = append(clone.attrs, attrs...)
	return &clone
}

func (h *textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = make([]string, 0, len(h.groups)+1)
	clone.groups = append(clone.groups, h.groups...)
	clone.groups = append(clone.groups, name)
	return &clone
}

const (
	ansiReset  = "\033[0m"
	ansiCyan   = "\033[36m"
	ansiBlue   = "\033[34m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiRedBg  = "\033[41;37m"
)

func colorize(name string, level slog.Level) string {
	var color string
	switch {
	case level >= levelCritical:
		color = ansiRedBg
	case level >= slog.LevelError:
		color = ansiRed
	case level >= slog.LevelWarn:
		color = ansiYellow
	case level >= slog.LevelInfo:
		color = ansiGreen
	case level >= slog.LevelDebug:
		color = ansiBlue
	default:
		color = ansiCyan
	}
	return color + name + ansiReset
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
