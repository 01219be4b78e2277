package config

import (
	"encoding/json"
	"os"
)

type jsonConfigLoader struct {
	paths []string
}

func (l *jsonConfigLoader) Load() (map[string]any, error) {
	for _, path := range l.paths {
		if !fileExists(path) {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		values := map[string]any{}
		if err := json.Unmarshal(data, &values); err != nil {
			return nil, ErrParseJSON.
				WithDetail("path", path).
				WithDetail("reason", err.Error()).
				WithCause(err)
		}
		return values, nil
	}

	return nil, ErrNoConfigSource
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
