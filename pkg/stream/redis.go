package stream

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shuldan/standalone/pkg/contracts"
)

type redisConfig struct {
	streamKeyFormat string
	consumerGroup   string
	blockInterval   time.Duration
	readCount       int64
	maxStreamLength int64
	approximateTrim bool
}

type RedisOption func(*redisConfig)

func WithStreamKeyFormat(format string) RedisOption {
	return func(c *redisConfig) {
		c.streamKeyFormat = format
	}
}

func WithConsumerGroup(group string) RedisOption {
	return func(c *redisConfig) {
		c.consumerGroup = group
	}
}

func WithMaxStreamLength(maxLen int64, approximate bool) RedisOption {
	return func(c *redisConfig) {
		c.maxStreamLength = maxLen
		c.approximateTrim = approximate
	}
}

func WithBlockInterval(d time.Duration) RedisOption {
	return func(c *redisConfig) {
		c.blockInterval = d
	}
}

type redisBroker struct {
	client  redis.UniversalClient
	config  *redisConfig
	logger  contracts.Logger
	mu      sync.Mutex
	cancels []context.CancelFunc
	closed  bool
	wg      sync.WaitGroup
}

// NewRedis is a broker on Redis Streams with consumer groups.
func NewRedis(client redis.UniversalClient, logger contracts.Logger, opts ...RedisOption) contracts.Broker {
	c := &redisConfig{
		streamKeyFormat: "stream:%s",
		consumerGroup:   "standalone",
		blockInterval:   time.Second,
		readCount:       10,
	}
	for _, opt := range opts {
		opt(c)
	}

	return &redisBroker{
		client: client,
		config: c,
		logger: logger,
	}
}

func (b *redisBroker) Produce(ctx context.Context, topic string, data []byte) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrClosed
	}

	args := &redis.XAddArgs{
		Stream: fmt.Sprintf(b.config.streamKeyFormat, topic),
		Values: map[string]any{
			"data":       data,
			"enqueuedAt": time.Now().UTC().Format(time.RFC3339),
		},
	}
	if b.config.maxStreamLength > 0 {
		args.MaxLen = b.config.maxStreamLength
		args.Approx = b.config.approximateTrim
	}

	if err := b.client.XAdd(ctx, args).Err(); err != nil {
		return ErrProduceFailed.
			WithDetail("topic", topic).
			WithCause(err)
	}
	return nil
}

func (b *redisBroker) Consume(ctx context.Context, topic string, handler func([]byte) error) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	b.cancels = append(b.cancels, cancel)
	b.mu.Unlock()

	streamKey := fmt.Sprintf(b.config.streamKeyFormat, topic)
	group := fmt.Sprintf("%s:%s", b.config.consumerGroup, topic)
	consumer := fmt.Sprintf("%s-%s", topic, uuid.NewString())

	if err := b.client.XGroupCreateMkStream(ctx, streamKey, group, "0").Err(); err != nil {
		if !isGroupExists(err) {
			cancel()
			return ErrConsumeSetupFailed.
				WithDetail("topic", topic).
				WithCause(err)
		}
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		defer cancel()
		b.consumeLoop(ctx, streamKey, group, consumer, topic, handler)
	}()

	return nil
}

func (b *redisBroker) consumeLoop(ctx context.Context, streamKey, group, consumer, topic string, handler func([]byte) error) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		streams, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    group,
			Consumer: consumer,
			Streams:  []string{streamKey, ">"},
			Count:    b.config.readCount,
			Block:    b.config.blockInterval,
		}).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			b.logger.Warn("stream read failed", "topic", topic, "error", err)
			continue
		}

		for _, s := range streams {
			for _, msg := range s.Messages {
				b.handleMessage(ctx, streamKey, group, topic, msg, handler)
			}
		}
	}
}

func (b *redisBroker) handleMessage(ctx context.Context, streamKey, group, topic string, msg redis.XMessage, handler func([]byte) error) {
	raw, ok := msg.Values["data"]
	if !ok {
		_ = b.client.XAck(ctx, streamKey, group, msg.ID).Err()
		return
	}

	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		data = []byte(fmt.Sprintf("%v", v))
	}

	if err := handler(data); err != nil {
		// left pending for redelivery
		b.logger.Warn("stream handler failed", "topic", topic, "id", msg.ID, "error", err)
		return
	}

	if err := b.client.XAck(ctx, streamKey, group, msg.ID).Err(); err != nil {
		b.logger.Warn("stream ack failed", "topic", topic, "id", msg.ID, "error", err)
	}
}

func (b *redisBroker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	cancels := b.cancels
	b.cancels = nil
	b.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	b.wg.Wait()
	return b.client.Close()
}

func isGroupExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "BUSYGROUP")
}
