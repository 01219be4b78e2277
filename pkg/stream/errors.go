package stream

import "github.com/shuldan/standalone/pkg/errors"

var newStreamCode = errors.WithPrefix("STREAM")

var (
	ErrClosed             = newStreamCode().New("broker is closed")
	ErrProduceFailed      = newStreamCode().New("failed to produce to topic {{.topic}}")
	ErrConsumeSetupFailed = newStreamCode().New("failed to set up consumer for topic {{.topic}}")
	ErrUnknownDriver      = newStreamCode().New("unknown stream driver {{.driver}}")
)
