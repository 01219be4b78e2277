package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shuldan/standalone/pkg/contracts"
)

// MapConfig is a read-only view over a nested map[string]any tree, the shape
// every loader in this package produces. Keys are dotted paths
// ("db.default.driver").
type MapConfig struct {
	values map[string]any
}

var _ contracts.Config = (*MapConfig)(nil)

func (c *MapConfig) Has(key string) bool {
	_, ok := c.find(key)
	return ok
}

func (c *MapConfig) Get(key string) any {
	value, _ := c.find(key)
	return value
}

func (c *MapConfig) GetString(key string, defaultVal ...string) string {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}

func (c *MapConfig) GetInt(key string, defaultVal ...int) int {
	n, ok := c.int64At(key)
	if !ok || n < int64(math.MinInt) || n > int64(math.MaxInt) {
		return getFirst(defaultVal)
	}
	return int(n)
}

func (c *MapConfig) GetInt64(key string, defaultVal ...int64) int64 {
	n, ok := c.int64At(key)
	if !ok {
		return getFirst(defaultVal)
	}
	return n
}

// int64At is the shared coercion behind the integer getters. YAML and JSON
// hand back uint64 or float64 for numeric scalars, env vars arrive as int or
// string.
func (c *MapConfig) int64At(key string) (int64, bool) {
	v, ok := c.find(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n < float64(math.MinInt64) || n > float64(math.MaxInt64) {
			return 0, false
		}
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func (c *MapConfig) GetBool(key string, defaultVal ...bool) bool {
	v, ok := c.find(key)
	if !ok {
		return getFirst(defaultVal)
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(b) {
		case "true", "1", "on", "yes":
			return true
		case "false", "0", "off", "no":
			return false
		}
	case int:
		return b != 0
	case float64:
		return b != 0
	}
	return getFirst(defaultVal)
}

// GetStringSlice reads a list value, or splits a scalar string on the
// separator (comma by default), trimming whitespace around each part.
func (c *MapConfig) GetStringSlice(key string, separator ...string) []string {
	v, ok := c.find(key)
	if !ok || v == nil {
		return nil
	}

	switch val := v.(type) {
	case []string:
		return val
	case []any:
		result := make([]string, len(val))
		for i, item := range val {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		sep := ","
		if len(separator) > 0 {
			sep = separator[0]
		}
		parts := strings.Split(val, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	default:
		return []string{fmt.Sprintf("%v", v)}
	}
}

func (c *MapConfig) GetSub(key string) (contracts.Config, bool) {
	sub, ok := c.find(key)
	if !ok {
		return nil, false
	}
	subMap, ok := sub.(map[string]any)
	if !ok {
		return nil, false
	}
	return NewMapConfig(subMap), true
}

func (c *MapConfig) All() map[string]any {
	return cloneTree(c.values)
}

func (c *MapConfig) find(path string) (any, bool) {
	current := c.values
	keys := strings.Split(path, ".")

	for i, k := range keys {
		v, exists := current[k]
		if !exists {
			return nil, false
		}
		if i == len(keys)-1 {
			return v, true
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

func cloneTree(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			dst[k] = cloneTree(m)
			continue
		}
		dst[k] = v
	}
	return dst
}

func getFirst[T any](values []T) T {
	var zero T
	if len(values) > 0 {
		return values[0]
	}
	return zero
}
