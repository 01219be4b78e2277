package config

// Loader produces one configuration layer as a nested map. Layers are
// combined by the chain loader, later layers overriding earlier ones.
type Loader interface {
	Load() (map[string]any, error)
}
