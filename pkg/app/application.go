package app

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shuldan/standalone/pkg/contracts"
)

type application struct {
	id    uuid.UUID
	env   Environment
	cfg   contracts.Config
	inj   contracts.Injector
	hooks *Hooks
}

var _ contracts.Application = (*application)(nil)

type Option func(*application)

func WithInjector(inj contracts.Injector) Option {
	return func(a *application) {
		a.inj = inj
	}
}

func WithHooks(hooks *Hooks) Option {
	return func(a *application) {
		a.hooks = hooks
	}
}

// New assembles an application from its parts. The application holds no
// shutdown logic of its own: Stop delegates entirely to the hook registry.
func New(env Environment, cfg contracts.Config, opts ...Option) contracts.Application {
	a := &application{
		id:  uuid.New(),
		env: env,
		cfg: cfg,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.inj == nil {
		a.inj = NewInjector()
	}
	if a.hooks == nil {
		a.hooks = NewHooks()
	}

	return a
}

func (a *application) ID() uuid.UUID {
	return a.id
}

func (a *application) Path() string {
	return a.env.Root()
}

func (a *application) Resources() fs.FS {
	return a.env.Resources()
}

func (a *application) Mode() contracts.Mode {
	return a.env.Mode()
}

func (a *application) Config() contracts.Config {
	return a.cfg
}

func (a *application) Injector() contracts.Injector {
	return a.inj
}

func (a *application) Hooks() *Hooks {
	return a.hooks
}

func (a *application) Stop() <-chan error {
	return a.hooks.Drain(context.Background())
}

// File joins a relative path onto the application root. Existence is not
// checked.
func File(app contracts.Application, rel string) string {
	return filepath.Join(app.Path(), rel)
}

// ExistingFile reports the joined path only when the filesystem entry exists.
func ExistingFile(app contracts.Application, rel string) (string, bool) {
	path := File(app, rel)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Resource reports the normalized name when it is present in the
// application's resource scope. At most one leading separator is stripped, so
// "/conf/app.yaml" and "conf/app.yaml" name the same resource.
func Resource(app contracts.Application, name string) (string, bool) {
	n := normalizeResource(name)
	if !fs.ValidPath(n) {
		return "", false
	}
	if _, err := fs.Stat(app.Resources(), n); err != nil {
		return "", false
	}
	return n, true
}

// ResourceStream opens the named resource for reading, or reports absence.
func ResourceStream(app contracts.Application, name string) (io.ReadCloser, bool) {
	n := normalizeResource(name)
	if !fs.ValidPath(n) {
		return nil, false
	}
	f, err := app.Resources().Open(n)
	if err != nil {
		return nil, false
	}
	return f, true
}

func normalizeResource(name string) string {
	return strings.TrimPrefix(name, "/")
}
