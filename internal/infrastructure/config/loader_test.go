package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("ENV", "")
	return dir
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "flat", mgr.viper.GetString("filtering.format"))
	assert.Equal(t, 4, mgr.viper.GetInt("filtering.max_parallel"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestManager_Load_CreatesDefaultFile(t *testing.T) {
	dir := isolateXDG(t)
	configFile := filepath.Join(dir, "config", "blockrules", "config.toml")

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, configFile)

	cfg := mgr.Get()
	assert.Equal(t, RulesetFormatFlat, cfg.Filtering.Format)
	assert.Equal(t, filepath.Join(dir, "data", "blockrules", "blockrules.db"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(dir, "state", "blockrules", "rulesets"), cfg.Filtering.OutputDir)
}

func TestManager_Load_SourcesAndNormalization(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "config.toml")
	content := `
[filtering]
format = "IOS"
max_parallel = 0
allow_abp_snippets = true

[[sources]]
name = "easylist"
path = "/lists/easylist.txt"
kind = "adblock"

[[sources]]
name = "tds"
path = "/lists/tds.json"
allow_abp_snippets = false
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, RulesetFormatIOS, cfg.Filtering.Format)
	assert.Equal(t, defaultMaxParallel, cfg.Filtering.MaxParallel)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, SourceKindAdblock, cfg.Sources[0].Kind)
	assert.Equal(t, SourceKindAuto, cfg.Sources[1].Kind)

	_, snippets := cfg.Sources[0].Settings(cfg.Filtering)
	assert.True(t, snippets)
	_, snippets = cfg.Sources[1].Settings(cfg.Filtering)
	assert.False(t, snippets)

	src, ok := cfg.Source("tds")
	require.True(t, ok)
	assert.Equal(t, "/lists/tds.json", src.Path)
}

func TestManager_Load_EnvOverrides(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[logging]\nlevel = \"info\"\n"), 0o644))

	t.Setenv("BLOCKRULES_LOG_LEVEL", "debug")
	t.Setenv("BLOCKRULES_FILTERING_FORMAT", "ios")

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, RulesetFormatIOS, cfg.Filtering.Format)
}

func TestManager_Load_InvalidConfig(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "config.toml")
	content := `
[filtering]
format = "wasm"

[[sources]]
name = "a"
path = ""
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filtering.format")
	assert.Contains(t, err.Error(), "sources[0].path")
}

func TestManager_Load_MalformedTOML(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[filtering\nformat ="), 0o644))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be valid TOML")
}

func TestManager_Watch_ReloadsOnChange(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[filtering]\nformat = \"flat\"\n"), 0o644))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	changed := make(chan *Config, 16)
	mgr.OnConfigChange(func(c *Config) {
		select {
		case changed <- c:
		default:
		}
	})
	require.NoError(t, mgr.Watch())
	require.NoError(t, mgr.Watch()) // idempotent

	require.NoError(t, os.WriteFile(configFile, []byte("[filtering]\nformat = \"ios\"\n"), 0o644))

	// A truncate and a write can arrive as separate events.
	deadline := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case c := <-changed:
			done = c.Filtering.Format == RulesetFormatIOS
		case <-deadline:
			t.Fatal("config change was not picked up")
		}
	}
	assert.Equal(t, RulesetFormatIOS, mgr.Get().Filtering.Format)
}

func TestManager_Watch_KeepsConfigOnInvalidChange(t *testing.T) {
	isolateXDG(t)
	configFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte("[filtering]\nformat = \"ios\"\n"), 0o644))

	mgr, err := NewManagerForFile(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	notified := make(chan struct{}, 1)
	mgr.OnConfigChange(func(*Config) {
		select {
		case notified <- struct{}{}:
		default:
		}
	})
	require.NoError(t, mgr.Watch())

	require.NoError(t, os.WriteFile(configFile, []byte("[filtering]\nformat = \"xml\"\n"), 0o644))

	select {
	case <-notified:
		t.Fatal("invalid config must not be applied")
	case <-time.After(reloadDebounce + 500*time.Millisecond):
	}
	assert.Equal(t, RulesetFormatIOS, mgr.Get().Filtering.Format)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "lists"), expandPath("~/lists"))
	assert.Equal(t, "/abs/path", expandPath("/abs/path"))
	assert.Equal(t, "~user/x", expandPath("~user/x"))
}
