package config

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3

	// Filtering defaults
	defaultRulesetFormat   = RulesetFormatFlat
	defaultMaxParallel     = 4
	defaultWatchDebounceMs = 500
)

// DefaultConfig returns the default configuration. Paths left empty are
// resolved against the XDG directories at load time.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			Compress:   true,
		},
		Filtering: FilteringConfig{
			Format:          defaultRulesetFormat,
			MaxParallel:     defaultMaxParallel,
			WatchDebounceMs: defaultWatchDebounceMs,
		},
	}
}
