package app

import (
	"reflect"
	"sync"

	"github.com/shuldan/standalone/pkg/contracts"
)

type cacheKey struct {
	app contracts.Application
	typ reflect.Type
}

// InstanceCache memoizes typed singleton resolution per (application, type)
// pair. The map itself is guarded, but resolution happens outside the lock:
// two goroutines racing on the same key may both hit the injector, which is
// accepted redundant work for a singleton injector. The first stored value
// wins, so callers always converge on one instance.
//
// Entries are removed by explicit eviction (the runtime evicts on stop), not
// by garbage-collector machinery.
type InstanceCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]any
}

func NewInstanceCache() *InstanceCache {
	return &InstanceCache{
		entries: make(map[cacheKey]any),
	}
}

func (c *InstanceCache) Resolve(app contracts.Application, typ reflect.Type) (any, error) {
	key := cacheKey{app: app, typ: typ}

	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	resolved, err := app.Injector().Resolve(typ)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing, nil
	}
	c.entries[key] = resolved
	return resolved, nil
}

// Evict drops every entry cached for the application and reports how many
// were removed.
func (c *InstanceCache) Evict(app contracts.Application) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if key.app == app {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *InstanceCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CachedAs resolves T for the application through the cache.
func CachedAs[T any](c *InstanceCache, app contracts.Application) (T, error) {
	var zero T
	typ := TypeOf[T]()
	v, err := c.Resolve(app, typ)
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
