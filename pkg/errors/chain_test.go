package errors

import (
	"context"
	"errors"
	"testing"
)

var (
	errChainStop  = Code("CHAIN_TEST_0001").New("stop failed")
	errChainOther = Code("CHAIN_TEST_0002").New("something else")
)

func TestChainErrorHandler(t *testing.T) {
	var seen []string

	swallowStop := HandlerFunc(func(_ context.Context, err error) error {
		seen = append(seen, "stop")
		if errors.Is(err, errChainStop) {
			return nil
		}
		return err
	})
	swallowAll := HandlerFunc(func(_ context.Context, err error) error {
		seen = append(seen, "all")
		return nil
	})

	chain := NewChainErrorHandler(swallowStop).Add(swallowAll)

	if err := chain.Handle(context.Background(), errChainStop.WithDetail("op", "stop")); err != nil {
		t.Errorf("first handler should have swallowed the error, got %v", err)
	}
	if len(seen) != 1 || seen[0] != "stop" {
		t.Errorf("unexpected handler order: %v", seen)
	}

	seen = nil
	if err := chain.Handle(context.Background(), errChainOther); err != nil {
		t.Errorf("second handler should have swallowed the error, got %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("both handlers should run, got %v", seen)
	}
}

func TestChainErrorHandlerUnhandled(t *testing.T) {
	refuse := HandlerFunc(func(_ context.Context, err error) error {
		return err
	})
	chain := NewChainErrorHandler(refuse)

	if err := chain.Handle(context.Background(), errChainOther); !errors.Is(err, errChainOther) {
		t.Errorf("unhandled error should pass through, got %v", err)
	}
}

func TestChainErrorHandlerNil(t *testing.T) {
	chain := NewChainErrorHandler()
	if err := chain.Handle(context.Background(), nil); err != nil {
		t.Errorf("nil error should pass through, got %v", err)
	}
}
