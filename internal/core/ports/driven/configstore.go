package driven

// ConfigStore provides access to persisted application configuration.
type ConfigStore interface {
	// Get retrieves a configuration value by key. The second return
	// value reports whether the key was present.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or def when absent.
	GetString(key, def string) string

	// GetInt retrieves an integer value, or def when absent.
	GetInt(key string, def int) int

	// Set stores a configuration value and persists it.
	Set(key string, value any) error

	// Keys returns all configuration keys currently set.
	Keys() []string
}
