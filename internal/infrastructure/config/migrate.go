package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// Migrator compares a user config file against the defaults and fills in
// keys that newer versions introduced.
type Migrator struct {
	// defaultViper holds a Viper instance with all defaults set.
	defaultViper *viper.Viper
}

// NewMigrator creates a new Migrator instance.
func NewMigrator() *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{defaultViper: v}
}

// MissingKeys returns the default keys absent from configFile, sorted.
// A missing file has nothing to migrate.
func (m *Migrator) MissingKeys(configFile string) ([]string, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, nil
	}

	userKeys, err := m.getUserConfigKeys(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	return m.findMissingKeys(m.getAllDefaultKeys(), userKeys), nil
}

// KeyInfo describes a default key missing from the user config.
type KeyInfo struct {
	Key          string
	Type         string
	DefaultValue string
}

// DescribeKeys returns the TOML type and default value of each key, as they
// would be written to the config file.
func (m *Migrator) DescribeKeys(keys []string) []KeyInfo {
	infos := make([]KeyInfo, 0, len(keys))
	for _, key := range keys {
		value := m.defaultViper.Get(key)
		infos = append(infos, KeyInfo{
			Key:          key,
			Type:         tomlType(value),
			DefaultValue: tomlValue(value),
		})
	}
	return infos
}

func tomlType(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	case float32, float64:
		return "float"
	case string:
		return "string"
	case map[string]any:
		return "table"
	case nil:
		return "unset"
	default:
		if reflect.ValueOf(v).Kind() == reflect.Slice {
			return "array"
		}
		return fmt.Sprintf("%T", v)
	}
}

// tomlValue renders v as a TOML literal, falling back to %v for values
// go-toml cannot encode on their own.
func tomlValue(v any) string {
	out, err := toml.Marshal(map[string]any{"v": v})
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(string(out)), "v ="))
}

// Migrate rewrites configFile with the missing default keys added and
// returns the keys it added. User values are kept.
func (m *Migrator) Migrate(configFile string) ([]string, error) {
	missing, err := m.MissingKeys(configFile)
	if err != nil || len(missing) == 0 {
		return nil, err
	}

	// No env binding here, overrides must not end up in the file.
	userViper := viper.New()
	userViper.SetConfigFile(configFile)
	userViper.SetConfigType("toml")
	mgr := &Manager{viper: userViper}
	mgr.setDefaults()
	if err := userViper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := userViper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := WriteConfig(cfg, configFile); err != nil {
		return nil, err
	}
	return missing, nil
}

func (m *Migrator) getAllDefaultKeys() []string {
	keys := m.defaultViper.AllKeys()

	filtered := make([]string, 0, len(keys))
	for _, key := range keys {
		// Resolved against XDG dirs at load time
		if key == "database.path" || key == "filtering.output_dir" || key == "logging.file" {
			continue
		}
		filtered = append(filtered, key)
	}

	sort.Strings(filtered)
	return filtered
}

func (m *Migrator) getUserConfigKeys(configFile string) (map[string]bool, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]any
	if err := toml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]bool)
	flattenMap(rawConfig, "", keys)
	return keys, nil
}

// flattenMap recursively flattens a nested map to dot-notation keys.
// Arrays of tables (sources) count as a single key.
func flattenMap(data map[string]any, prefix string, keys map[string]bool) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if val, ok := v.(map[string]any); ok {
			flattenMap(val, key, keys)
			continue
		}
		keys[key] = true
	}
}

// findMissingKeys returns keys that are in defaults but not in user config.
func (m *Migrator) findMissingKeys(defaultKeys []string, userKeys map[string]bool) []string {
	missing := make([]string, 0)
	for _, key := range defaultKeys {
		if keyOrParentExists(key, userKeys) {
			continue
		}
		missing = append(missing, key)
	}

	sort.Strings(missing)
	return missing
}

// keyOrParentExists checks if a key, or a parent defined as a leaf value, exists.
func keyOrParentExists(key string, keys map[string]bool) bool {
	if keys[key] {
		return true
	}
	parts := strings.Split(key, ".")
	for i := len(parts) - 1; i > 0; i-- {
		if keys[strings.Join(parts[:i], ".")] {
			return true
		}
	}
	return false
}
