package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// yamlConfigLoader parses the first readable file among its candidate paths.
// JSON-style unmarshaling keeps every nested map keyed by string, which is
// what the dotted-key lookup expects.
type yamlConfigLoader struct {
	paths []string
}

func (l *yamlConfigLoader) Load() (map[string]any, error) {
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		values := map[string]any{}
		if err := yaml.UnmarshalWithOptions(data, &values, yaml.UseJSONUnmarshaler()); err != nil {
			return nil, ErrParseYAML.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}
		return values, nil
	}

	return nil, ErrNoConfigSource
}
