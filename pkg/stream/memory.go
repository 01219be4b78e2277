package stream

import (
	"context"
	"sync"

	"github.com/shuldan/standalone/pkg/contracts"
)

type memoryBroker struct {
	mu       sync.RWMutex
	channels map[string]chan []byte
	cancels  []context.CancelFunc
	closed   bool
	done     chan struct{}
	wg       sync.WaitGroup
	logger   contracts.Logger
}

// NewMemory is an in-process broker backed by buffered channels. Useful for
// Dev and Test modes where no external broker exists.
func NewMemory(logger contracts.Logger) contracts.Broker {
	return &memoryBroker{
		channels: make(map[string]chan []byte),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

func (b *memoryBroker) topicChan(topic string) chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.channels[topic]; ok {
		return ch
	}
	ch := make(chan []byte, 100)
	b.channels[topic] = ch
	return ch
}

func (b *memoryBroker) Produce(ctx context.Context, topic string, data []byte) error {
	b.mu.RLock()
	closed := b.closed
	b.mu.RUnlock()
	if closed {
		return ErrClosed
	}

	// The send races Close on a full topic buffer; the done channel keeps
	// it from blocking forever once consumers are gone.
	select {
	case b.topicChan(topic) <- data:
		return nil
	case <-b.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *memoryBroker) Consume(ctx context.Context, topic string, handler func([]byte) error) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	b.cancels = append(b.cancels, cancel)
	b.mu.Unlock()

	ch := b.topicChan(topic)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case data, ok := <-ch:
				if !ok {
					return
				}
				if err := handler(data); err != nil {
					b.logger.Warn("stream handler failed", "topic", topic, "error", err)
				}
			}
		}
	}()

	return nil
}

func (b *memoryBroker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	cancels := b.cancels
	b.cancels = nil
	b.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	b.wg.Wait()
	return nil
}
