package database

import (
	"sort"
	"sync"

	"github.com/shuldan/standalone/pkg/contracts"
	"github.com/shuldan/standalone/pkg/errors"
)

type pool struct {
	mu          sync.RWMutex
	connections map[string]contracts.Database
	defaultName string
}

func NewPool(defaultName string) *pool {
	if defaultName == "" {
		defaultName = "default"
	}
	return &pool{
		connections: make(map[string]contracts.Database),
		defaultName: defaultName,
	}
}

var _ contracts.DatabasePool = (*pool)(nil)

func (p *pool) Register(name string, db contracts.Database) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.connections[name]; exists {
		return ErrRegisterConnection.
			WithDetail("name", name).
			WithDetail("reason", "connection already exists")
	}

	p.connections[name] = db
	return nil
}

func (p *pool) Get(name string) (contracts.Database, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	db, exists := p.connections[name]
	return db, exists
}

func (p *pool) Default() (contracts.Database, bool) {
	return p.Get(p.defaultName)
}

func (p *pool) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	names := make([]string, 0, len(p.connections))
	for name := range p.connections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *pool) ConnectAll() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var errs []error
	for name, db := range p.connections {
		if err := db.Connect(); err != nil {
			errs = append(errs, ErrFailedToOpenDatabase.WithDetail("name", name).WithCause(err))
		}
	}

	if len(errs) > 0 {
		return ErrMultipleOpenErrors.WithCause(errors.Join(errs...))
	}
	return nil
}

func (p *pool) CloseAll() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for name, db := range p.connections {
		if err := db.Close(); err != nil {
			errs = append(errs, ErrCloseDatabase.WithDetail("name", name).WithCause(err))
		}
	}

	if len(errs) > 0 {
		return ErrMultipleCloseErrors.WithCause(errors.Join(errs...))
	}
	return nil
}
