package config

import (
	"os"
	"strconv"
	"strings"
)

// envConfigLoader builds a nested tree from prefixed environment variables,
// with "__" marking a level: APP_DB__DEFAULT__DRIVER=sqlite3 becomes
// db.default.driver. Values that read as bool, int or float are typed.
type envConfigLoader struct {
	prefix string
}

func (l *envConfigLoader) Load() (map[string]any, error) {
	values := make(map[string]any)

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		key := strings.ToLower(strings.TrimPrefix(name, l.prefix))
		if key == "" {
			continue
		}
		path := strings.Split(strings.ReplaceAll(key, "__", "."), ".")
		setNested(values, path, typedScalar(value))
	}

	return values, nil
}

func typedScalar(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func setNested(m map[string]any, path []string, value any) {
	for _, k := range path[:len(path)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			m[k] = next
		}
		m = next
	}
	m[path[len(path)-1]] = value
}
