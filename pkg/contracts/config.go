package contracts

// Config is a read-only view over layered configuration. Keys are dotted
// paths into a nested tree: "db.default.driver" reaches the driver name of
// the default database connection.
type Config interface {
	// Has reports whether the key resolves to any value, including nil.
	Has(key string) bool

	Get(key string) any

	// Typed getters coerce compatible scalars and fall back to the optional
	// default when the key is absent or the value cannot be coerced.
	GetString(key string, defaultVal ...string) string
	GetInt(key string, defaultVal ...int) int
	GetInt64(key string, defaultVal ...int64) int64
	GetBool(key string, defaultVal ...bool) bool
	GetStringSlice(key string, separator ...string) []string

	// GetSub narrows the view to a subtree, e.g. the connection block under
	// "db.default". Absent for scalar and missing keys.
	GetSub(key string) (Config, bool)

	// All is a deep copy of the backing tree.
	All() map[string]any
}
