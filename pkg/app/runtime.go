package app

import (
	"context"
	"io"
	"io/fs"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/shuldan/standalone/pkg/contracts"
	"github.com/shuldan/standalone/pkg/errors"
	"github.com/shuldan/standalone/pkg/logger"
)

type slotRef struct {
	app contracts.Application
}

// Runtime holds at most one current application and orchestrates start/stop
// ordering. Lifecycle transitions are serialized by a mutex; the slot itself
// is an atomically swapped reference, so readers never block.
type Runtime struct {
	mu          sync.Mutex
	slot        atomic.Pointer[slotRef]
	scopeMu     sync.Mutex
	scope       fs.FS
	logger      contracts.Logger
	cache       *InstanceCache
	stopTimeout time.Duration
	stopHandler contracts.ErrorHandler
}

type RuntimeOption func(*Runtime)

func WithLogger(log contracts.Logger) RuntimeOption {
	return func(r *Runtime) {
		r.logger = log
	}
}

// WithStopTimeout bounds the wait on an application's stop signal. Zero waits
// forever.
func WithStopTimeout(timeout time.Duration) RuntimeOption {
	return func(r *Runtime) {
		r.stopTimeout = timeout
	}
}

// WithStopErrorHandler forwards swallowed shutdown failures to the handlers,
// for callers that need more than the warning log line. Several handlers are
// chained: each gets a chance to consume the failure until one returns nil.
func WithStopErrorHandler(handlers ...contracts.ErrorHandler) RuntimeOption {
	return func(r *Runtime) {
		switch len(handlers) {
		case 0:
			r.stopHandler = nil
		case 1:
			r.stopHandler = handlers[0]
		default:
			r.stopHandler = errors.NewChainErrorHandler(handlers...)
		}
	}
}

func NewRuntime(opts ...RuntimeOption) *Runtime {
	r := &Runtime{
		cache: NewInstanceCache(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		log, err := logger.NewLogger()
		if err != nil {
			panic(err)
		}
		r.logger = log
	}

	return r
}

// Start installs the application as current, first running the full stop
// procedure on any previously current one. A nil application is a no-op,
// mirroring Stop. Start never fails on its own account; failures of the
// previous application are contained in its stop.
func (r *Runtime) Start(app contracts.Application) {
	if app == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev := r.slot.Load(); prev != nil {
		r.stopLocked(prev.app)
	}

	r.slot.Store(&slotRef{app: app})

	if app.Mode() == contracts.Test {
		return
	}
	args := []any{"mode", app.Mode().String()}
	if ident, ok := app.(interface{ ID() uuid.UUID }); ok {
		args = append(args, "id", ident.ID().String())
	}
	r.logger.Info("application started", args...)
}

// Stop runs the stop procedure on the application. A nil application is a
// no-op. Shutdown failures are logged and swallowed; the current slot is
// cleared no matter what.
func (r *Runtime) Stop(app contracts.Application) {
	if app == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked(app)
}

func (r *Runtime) stopLocked(app contracts.Application) {
	release := r.acquireScope(app.Resources())
	defer release()

	defer func() {
		r.slot.Store(nil)
		r.cache.Evict(app)
	}()

	signal := app.Stop()

	var err error
	if r.stopTimeout > 0 {
		timer := time.NewTimer(r.stopTimeout)
		defer timer.Stop()
		select {
		case err = <-signal:
		case <-timer.C:
			err = ErrStopTimeout.WithDetail("timeout", r.stopTimeout.String())
		}
	} else {
		err = <-signal
	}

	if err != nil {
		r.logger.Warn("error stopping application", "error", err)
		if r.stopHandler != nil {
			_ = r.stopHandler.Handle(context.Background(), err)
		}
	}
}

// acquireScope swaps the runtime's resource-resolution scope and returns the
// release function restoring the previous one. Release runs on every exit
// path of the stop procedure.
func (r *Runtime) acquireScope(scope fs.FS) func() {
	r.scopeMu.Lock()
	prev := r.scope
	r.scope = scope
	r.scopeMu.Unlock()

	return func() {
		r.scopeMu.Lock()
		r.scope = prev
		r.scopeMu.Unlock()
	}
}

// Current returns the current application, or ErrNoApplication when the slot
// is empty.
func (r *Runtime) Current() (contracts.Application, error) {
	if ref := r.slot.Load(); ref != nil {
		return ref.app, nil
	}
	return nil, ErrNoApplication
}

func (r *Runtime) Config() (contracts.Config, error) {
	app, err := r.Current()
	if err != nil {
		return nil, err
	}
	return app.Config(), nil
}

func (r *Runtime) Mode() (contracts.Mode, error) {
	app, err := r.Current()
	if err != nil {
		return "", err
	}
	return app.Mode(), nil
}

func (r *Runtime) Injector() (contracts.Injector, error) {
	app, err := r.Current()
	if err != nil {
		return nil, err
	}
	return app.Injector(), nil
}

// Resources is the active resource-resolution scope: the scope acquired by a
// running stop procedure if any, else the current application's.
func (r *Runtime) Resources() (fs.FS, error) {
	r.scopeMu.Lock()
	scope := r.scope
	r.scopeMu.Unlock()
	if scope != nil {
		return scope, nil
	}

	app, err := r.Current()
	if err != nil {
		return nil, err
	}
	return app.Resources(), nil
}

func (r *Runtime) File(rel string) (string, error) {
	app, err := r.Current()
	if err != nil {
		return "", err
	}
	return File(app, rel), nil
}

func (r *Runtime) ExistingFile(rel string) (string, bool, error) {
	app, err := r.Current()
	if err != nil {
		return "", false, err
	}
	path, ok := ExistingFile(app, rel)
	return path, ok, nil
}

func (r *Runtime) Resource(name string) (string, bool, error) {
	app, err := r.Current()
	if err != nil {
		return "", false, err
	}
	n, ok := Resource(app, name)
	return n, ok, nil
}

func (r *Runtime) ResourceStream(name string) (io.ReadCloser, bool, error) {
	app, err := r.Current()
	if err != nil {
		return nil, false, err
	}
	stream, ok := ResourceStream(app, name)
	return stream, ok, nil
}

// Cache exposes the runtime's instance cache. Entries for an application are
// evicted when the runtime stops it.
func (r *Runtime) Cache() *InstanceCache {
	return r.cache
}

// Resolve memoizes injector resolution for the current application.
func (r *Runtime) Resolve(typ reflect.Type) (any, error) {
	app, err := r.Current()
	if err != nil {
		return nil, err
	}
	return r.cache.Resolve(app, typ)
}

var defaultRuntime atomic.Pointer[Runtime]

func init() {
	defaultRuntime.Store(NewRuntime())
}

// Default is the process-wide runtime used by the package-level functions.
func Default() *Runtime {
	return defaultRuntime.Load()
}

func SetDefault(r *Runtime) {
	if r == nil {
		return
	}
	defaultRuntime.Store(r)
}

func Start(app contracts.Application) {
	Default().Start(app)
}

func Stop(app contracts.Application) {
	Default().Stop(app)
}

func Current() (contracts.Application, error) {
	return Default().Current()
}
