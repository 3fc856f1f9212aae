package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	// reloadTimer debounces file events while watching.
	reloadTimer *time.Timer
}

// NewManager creates a configuration manager for the default XDG config file.
func NewManager() (*Manager, error) {
	configFile, err := GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForFile(configFile)
}

// NewManagerForFile creates a configuration manager reading configFile.
func NewManagerForFile(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// BLOCKRULES_FILTERING_FORMAT, BLOCKRULES_DATABASE_PATH, ...
	v.SetEnvPrefix("BLOCKRULES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Same names the logger reads before config is loaded.
	if err := v.BindEnv("logging.level", "BLOCKRULES_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind BLOCKRULES_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "BLOCKRULES_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind BLOCKRULES_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables. A
// missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload()
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.configFile); errors.Is(err, fs.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configFile,
				createErr,
			)
		}
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}
	return nil
}

// reload re-reads the merged viper state (must be called with lock held for write).
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}

	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Filtering.OutputDir == "" {
		dir, err := GetRulesetDir()
		if err != nil {
			return fmt.Errorf("failed to get ruleset directory: %w", err)
		}
		config.Filtering.OutputDir = dir
	}

	config.Database.Path = expandPath(config.Database.Path)
	config.Filtering.OutputDir = expandPath(config.Filtering.OutputDir)
	config.Logging.File = expandPath(config.Logging.File)
	for i := range config.Sources {
		config.Sources[i].Path = expandPath(config.Sources[i].Path)
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Filtering.Format = RulesetFormat(strings.ToLower(string(config.Filtering.Format)))
	if config.Filtering.Format == "" {
		config.Filtering.Format = defaultRulesetFormat
	}
	if config.Filtering.MaxParallel <= 0 {
		config.Filtering.MaxParallel = defaultMaxParallel
	}

	for i := range config.Sources {
		s := &config.Sources[i]
		s.Name = strings.TrimSpace(s.Name)
		s.Kind = SourceKind(strings.ToLower(string(s.Kind)))
		if s.Kind == "" {
			s.Kind = SourceKindAuto
		}
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Sources = append([]SourceConfig(nil), m.config.Sources...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the defaults to the config file.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	return WriteConfig(DefaultConfig(), m.configFile)
}

// setDefaults registers every default key with viper, so env overrides and
// partial files resolve against them.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("filtering.output_dir", defaults.Filtering.OutputDir)
	m.viper.SetDefault("filtering.format", string(defaults.Filtering.Format))
	m.viper.SetDefault("filtering.max_parallel", defaults.Filtering.MaxParallel)
	m.viper.SetDefault("filtering.watch_debounce_ms", defaults.Filtering.WatchDebounceMs)
	m.viper.SetDefault("filtering.naked_hostname_is_pure_host", defaults.Filtering.NakedHostnameIsPureHost)
	m.viper.SetDefault("filtering.allow_abp_snippets", defaults.Filtering.AllowAbpSnippets)

	m.viper.SetDefault("database.path", defaults.Database.Path)
}
