package contracts

import "context"

// Broker is the opaque stream runtime an application may compose. The
// lifecycle core never inspects it; it only routes Close through the
// application's shutdown hooks.
type Broker interface {
	Produce(ctx context.Context, topic string, data []byte) error
	Consume(ctx context.Context, topic string, handler func([]byte) error) error
	Close() error
}
