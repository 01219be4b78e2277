package config

import "github.com/shuldan/standalone/pkg/contracts"

var _ Loader = (*envConfigLoader)(nil)
var _ Loader = (*yamlConfigLoader)(nil)
var _ Loader = (*jsonConfigLoader)(nil)
var _ Loader = (*chainLoader)(nil)

func NewEnvConfigLoader(prefix string) Loader {
	return &envConfigLoader{prefix: prefix}
}

func NewYamlConfigLoader(paths ...string) Loader {
	return &yamlConfigLoader{paths: paths}
}

func NewJSONConfigLoader(paths ...string) Loader {
	return &jsonConfigLoader{paths: paths}
}

func NewChainLoader(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}

func NewMapConfig(values map[string]any) contracts.Config {
	return &MapConfig{values: values}
}

// Load builds the default layered configuration: yaml and json files first,
// environment variables on top, template expansion last.
func Load(envPrefix string, paths ...string) (contracts.Config, error) {
	loader := newTemplatedLoader(NewChainLoader(
		NewYamlConfigLoader(paths...),
		NewJSONConfigLoader(paths...),
		NewEnvConfigLoader(envPrefix),
	))

	values, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewMapConfig(values), nil
}
