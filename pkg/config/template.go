package config

import (
	"os"
	"strings"
	"text/template"
)

// templatedLoader expands template constructs in string values after the
// underlying loader runs:
//
//	url: '{{ env "DATABASE_URL" }}'
//	driver: '{{ default "sqlite3" (env "DATABASE_DRIVER") }}'
//
// A value that fails to parse or render is kept verbatim.
type templatedLoader struct {
	loader Loader
}

func newTemplatedLoader(loader Loader) Loader {
	return &templatedLoader{loader: loader}
}

func (t *templatedLoader) Load() (map[string]any, error) {
	values, err := t.loader.Load()
	if err != nil {
		return nil, err
	}

	expanded := make(map[string]any, len(values))
	for k, v := range values {
		expanded[k] = expandValue(v)
	}
	return expanded, nil
}

func expandValue(v any) any {
	switch val := v.(type) {
	case string:
		return expandString(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = expandValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = expandValue(item)
		}
		return out
	default:
		return v
	}
}

var templateFuncs = template.FuncMap{
	"env": os.Getenv,
	"default": func(fallback, value string) string {
		if value == "" {
			return fallback
		}
		return value
	},
}

func expandString(s string) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	tmpl, err := template.New("value").Funcs(templateFuncs).Parse(s)
	if err != nil {
		return s
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, nil); err != nil {
		return s
	}
	return out.String()
}
