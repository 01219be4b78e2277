package app

import (
	"context"
	"sync"

	"github.com/shuldan/standalone/pkg/errors"
)

type Hook func(ctx context.Context) error

type namedHook struct {
	name string
	fn   Hook
}

// Hooks is an ordered shutdown-hook registry. Collaborators register hooks
// while the application is assembled; Drain runs them in reverse registration
// order and fulfils the aggregate completion signal once every hook has run.
type Hooks struct {
	mu     sync.Mutex
	hooks  []namedHook
	drain  sync.Once
	signal chan error
}

func NewHooks() *Hooks {
	return &Hooks{
		signal: make(chan error, 1),
	}
}

func (h *Hooks) Register(name string, fn Hook) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, namedHook{name: name, fn: fn})
}

func (h *Hooks) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.hooks)
}

// Drain runs the hooks on its own goroutine. The returned channel yields the
// joined failure, if any, and is closed when every hook has run. Repeated
// calls share one signal; the hooks run once.
func (h *Hooks) Drain(ctx context.Context) <-chan error {
	h.drain.Do(func() {
		h.mu.Lock()
		hooks := make([]namedHook, len(h.hooks))
		copy(hooks, h.hooks)
		h.mu.Unlock()

		go func() {
			defer close(h.signal)
			var errs []error
			for i := len(hooks) - 1; i >= 0; i-- {
				if err := hooks[i].fn(ctx); err != nil {
					errs = append(errs, ErrHookFailed.
						WithDetail("hook", hooks[i].name).
						WithCause(err))
				}
			}
			if len(errs) > 0 {
				h.signal <- errors.Join(errs...)
			}
		}()
	})
	return h.signal
}
