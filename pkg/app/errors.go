package app

import "github.com/shuldan/standalone/pkg/errors"

var newAppCode = errors.WithPrefix("APP")
var newInjectorCode = errors.WithPrefix("APP_INJECTOR")

var (
	ErrNoApplication = newAppCode().New("no started application")
	ErrStopTimeout   = newAppCode().New("application stop did not complete within {{.timeout}}")
	ErrHookFailed    = newAppCode().New("shutdown hook {{.hook}} failed")

	ErrCircularDep       = newInjectorCode().New("circular dependency detected for type {{.type}}")
	ErrValueNotFound     = newInjectorCode().New("value not found for type {{.type}}")
	ErrDuplicateInstance = newInjectorCode().New("instance already exists for type {{.type}}")
	ErrDuplicateFactory  = newInjectorCode().New("factory already registered for type {{.type}}")
	ErrWrongType         = newInjectorCode().New("resolved value for type {{.type}} has unexpected concrete type {{.actual}}")
)
