package logger

import (
	"io"
	"log/slog"
)

type Option func(*config)

type config struct {
	level  slog.Level
	json   bool
	writer io.Writer
	color  bool
}

func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSON selects slog's JSON handler instead of the compact text one.
func WithJSON() Option {
	return func(c *config) {
		c.json = true
	}
}

func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}
		c.writer = w
	}
}

// WithColor colors level names when the writer is a terminal. Without a
// terminal it is a no-op.
func WithColor() Option {
	return func(c *config) {
		c.color = true
	}
}
