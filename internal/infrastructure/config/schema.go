package config

// Config represents the complete configuration for blockrules.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	Filtering FilteringConfig `mapstructure:"filtering" toml:"filtering" json:"filtering"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database" json:"database"`
	// Sources lists the local filter lists to compile.
	Sources []SourceConfig `mapstructure:"sources" toml:"sources" json:"sources,omitempty"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File enables logging to a rotated file in addition to stderr. Empty disables it.
	File       string `mapstructure:"file" toml:"file" json:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// RulesetFormat selects the compiled artifact.
type RulesetFormat string

const (
	RulesetFormatFlat RulesetFormat = "flat"
	RulesetFormatIOS  RulesetFormat = "ios"
)

// FilteringConfig controls parsing and compilation of every source.
type FilteringConfig struct {
	// OutputDir is where compiled rulesets are written. Defaults to the XDG state dir.
	OutputDir string        `mapstructure:"output_dir" toml:"output_dir" json:"output_dir,omitempty"`
	Format    RulesetFormat `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=flat,enum=ios"`
	// MaxParallel bounds how many sources are updated at the same time.
	MaxParallel int `mapstructure:"max_parallel" toml:"max_parallel" json:"max_parallel" jsonschema:"minimum=1"`
	// WatchDebounceMs is how long a watched file must stay unchanged before recompiling.
	WatchDebounceMs int `mapstructure:"watch_debounce_ms" toml:"watch_debounce_ms" json:"watch_debounce_ms" jsonschema:"minimum=0"`
	// Defaults applied to sources that do not override them.
	NakedHostnameIsPureHost bool `mapstructure:"naked_hostname_is_pure_host" toml:"naked_hostname_is_pure_host" json:"naked_hostname_is_pure_host"`
	AllowAbpSnippets        bool `mapstructure:"allow_abp_snippets" toml:"allow_abp_snippets" json:"allow_abp_snippets"`
}

// DatabaseConfig holds database configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// SourceKind selects the parser of a source.
type SourceKind string

const (
	SourceKindAuto       SourceKind = "auto"
	SourceKindAdblock    SourceKind = "adblock"
	SourceKindDuckDuckGo SourceKind = "duckduckgo"
)

// SourceConfig declares one local filter list.
type SourceConfig struct {
	Name string     `mapstructure:"name" toml:"name" json:"name"`
	Path string     `mapstructure:"path" toml:"path" json:"path"`
	Kind SourceKind `mapstructure:"kind" toml:"kind,omitempty" json:"kind,omitempty" jsonschema:"enum=auto,enum=adblock,enum=duckduckgo"`
	// Per-source overrides of the filtering defaults.
	NakedHostnameIsPureHost *bool `mapstructure:"naked_hostname_is_pure_host" toml:"naked_hostname_is_pure_host,omitempty" json:"naked_hostname_is_pure_host,omitempty"`
	AllowAbpSnippets        *bool `mapstructure:"allow_abp_snippets" toml:"allow_abp_snippets,omitempty" json:"allow_abp_snippets,omitempty"`
}

// Settings resolves the effective parser switches of s against the filtering defaults.
func (s SourceConfig) Settings(f FilteringConfig) (nakedHostnameIsPureHost, allowAbpSnippets bool) {
	nakedHostnameIsPureHost = f.NakedHostnameIsPureHost
	if s.NakedHostnameIsPureHost != nil {
		nakedHostnameIsPureHost = *s.NakedHostnameIsPureHost
	}
	allowAbpSnippets = f.AllowAbpSnippets
	if s.AllowAbpSnippets != nil {
		allowAbpSnippets = *s.AllowAbpSnippets
	}
	return nakedHostnameIsPureHost, allowAbpSnippets
}

// Source returns the source named name, or false.
func (c *Config) Source(name string) (SourceConfig, bool) {
	for _, s := range c.Sources {
		if s.Name == name {
			return s, true
		}
	}
	return SourceConfig{}, false
}
