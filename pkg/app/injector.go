package app

import (
	"reflect"
	"sync"

	"github.com/shuldan/standalone/pkg/contracts"
)

type injector struct {
	mu        sync.RWMutex
	factories map[reflect.Type]func(i contracts.Injector) (any, error)
	instances map[reflect.Type]any
}

func NewInjector() contracts.Injector {
	return &injector{
		factories: make(map[reflect.Type]func(i contracts.Injector) (any, error)),
		instances: make(map[reflect.Type]any),
	}
}

func (c *injector) Has(abstract reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, hasFactory := c.factories[abstract]
	_, hasInstance := c.instances[abstract]
	return hasFactory || hasInstance
}

func (c *injector) Instance(abstract reflect.Type, concrete any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.instances[abstract]; exists {
		return ErrDuplicateInstance.WithDetail("type", abstract.String())
	}
	c.instances[abstract] = concrete
	return nil
}

func (c *injector) Factory(abstract reflect.Type, factory func(i contracts.Injector) (any, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.factories[abstract]; exists {
		return ErrDuplicateFactory.WithDetail("type", abstract.String())
	}
	c.factories[abstract] = factory
	return nil
}

func (c *injector) Resolve(abstract reflect.Type) (any, error) {
	return c.resolveWithStack(abstract, make(map[reflect.Type]bool))
}

func (c *injector) resolveWithStack(abstract reflect.Type, resolving map[reflect.Type]bool) (any, error) {
	c.mu.RLock()
	if instance, exists := c.instances[abstract]; exists {
		c.mu.RUnlock()
		return instance, nil
	}
	c.mu.RUnlock()

	if resolving[abstract] {
		return nil, ErrCircularDep.WithDetail("type", abstract.String())
	}

	c.mu.RLock()
	factory, exists := c.factories[abstract]
	c.mu.RUnlock()

	if !exists {
		return nil, ErrValueNotFound.WithDetail("type", abstract.String())
	}

	resolving[abstract] = true
	defer func() {
		delete(resolving, abstract)
	}()

	proxy := &injectorProxy{
		injector:  c,
		resolving: resolving,
	}

	instance, err := factory(proxy)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, exists := c.instances[abstract]; exists {
		return existing, nil
	}

	c.instances[abstract] = instance
	return instance, nil
}

// injectorProxy carries the resolution stack through nested factory calls so
// cycles are detected across one Resolve invocation.
type injectorProxy struct {
	injector  *injector
	resolving map[reflect.Type]bool
}

func (p *injectorProxy) Has(abstract reflect.Type) bool {
	return p.injector.Has(abstract)
}

func (p *injectorProxy) Instance(abstract reflect.Type, concrete any) error {
	return p.injector.Instance(abstract, concrete)
}

func (p *injectorProxy) Factory(abstract reflect.Type, factory func(i contracts.Injector) (any, error)) error {
	return p.injector.Factory(abstract, factory)
}

func (p *injectorProxy) Resolve(abstract reflect.Type) (any, error) {
	return p.injector.resolveWithStack(abstract, p.resolving)
}

// TypeOf yields the reflect.Type key for T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func RegisterInstance[T any](i contracts.Injector, concrete T) error {
	return i.Instance(TypeOf[T](), concrete)
}

func RegisterFactory[T any](i contracts.Injector, factory func(i contracts.Injector) (T, error)) error {
	return i.Factory(TypeOf[T](), func(i contracts.Injector) (any, error) {
		return factory(i)
	})
}

func ResolveAs[T any](i contracts.Injector) (T, error) {
	var zero T
	typ := TypeOf[T]()
	v, err := i.Resolve(typ)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, ErrWrongType.
			WithDetail("type", typ.String()).
			WithDetail("actual", reflect.TypeOf(v).String())
	}
	return t, nil
}
