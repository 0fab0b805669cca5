package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt retrieves an integer configuration value.
	// Returns 0 if key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// Set stores a configuration value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Path returns the configuration file path.
	Path() string
}

// Well-known configuration keys.
const (
	// ConfigDataDir is the root directory of the JSON dataset.
	ConfigDataDir = "data_dir"

	// ConfigSourceKind selects the record source: "jsondir" or "sqlite".
	ConfigSourceKind = "source"

	// ConfigDatabasePath is the SQLite database file path.
	ConfigDatabasePath = "database_path"

	// ConfigLoadTimeoutSeconds bounds a single load of the dataset.
	ConfigLoadTimeoutSeconds = "load_timeout_seconds"

	// ConfigWatch enables automatic refresh on dataset file changes.
	ConfigWatch = "watch"

	// ConfigVerbose enables debug logging to stderr.
	ConfigVerbose = "verbose"
)
