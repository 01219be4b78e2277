package contracts

import (
	"io/fs"
	"reflect"
)

type Mode string

const (
	Dev  Mode = "Dev"
	Test Mode = "Test"
	Prod Mode = "Prod"
)

func (m Mode) String() string {
	return string(m)
}

// Application is one configured runtime instance. Implementations supply the
// primitives only; derived lookups (files, resources) live in pkg/app and are
// defined purely in terms of these.
type Application interface {
	// Path is the application root directory on disk.
	Path() string

	// Resources is the scope used to resolve named resources
	// (configuration files, SQL scripts, etc.) for this application.
	Resources() fs.FS

	Mode() Mode

	Config() Config

	Injector() Injector

	// Stop triggers shutdown and returns the aggregate completion signal.
	// The channel yields at most one error and is closed once every
	// registered shutdown hook has run.
	Stop() <-chan error
}

type Injector interface {
	Has(abstract reflect.Type) bool
	Instance(abstract reflect.Type, concrete any) error
	Factory(abstract reflect.Type, factory func(i Injector) (any, error)) error
	Resolve(abstract reflect.Type) (any, error)
}
