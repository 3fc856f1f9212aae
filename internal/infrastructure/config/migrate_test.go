package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_GetAllDefaultKeys(t *testing.T) {
	keys := NewMigrator().getAllDefaultKeys()

	assert.Contains(t, keys, "filtering.format")
	assert.Contains(t, keys, "logging.level")
	assert.NotContains(t, keys, "database.path")
	assert.NotContains(t, keys, "filtering.output_dir")
}

func TestMigrator_MissingKeys(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logging]
level = "debug"
format = "json"

[filtering]
format = "ios"

[[sources]]
name = "a"
path = "/a.txt"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	m := NewMigrator()
	missing, err := m.MissingKeys(configFile)
	require.NoError(t, err)

	assert.Contains(t, missing, "filtering.max_parallel")
	assert.Contains(t, missing, "logging.max_backups")
	assert.NotContains(t, missing, "logging.level")
	assert.NotContains(t, missing, "filtering.format")
}

func TestMigrator_MissingFile(t *testing.T) {
	missing, err := NewMigrator().MissingKeys(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestMigrator_Migrate(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.toml")
	content := `
[filtering]
format = "ios"

[[sources]]
name = "a"
path = "/a.txt"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

	m := NewMigrator()
	added, err := m.Migrate(configFile)
	require.NoError(t, err)
	assert.Contains(t, added, "filtering.max_parallel")

	missing, err := m.MissingKeys(configFile)
	require.NoError(t, err)
	assert.Empty(t, missing)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format = 'ios'")
	assert.Contains(t, string(data), "path = '/a.txt'")
}

func TestMigrator_DescribeKeys(t *testing.T) {
	infos := NewMigrator().DescribeKeys([]string{"filtering.max_parallel", "filtering.format"})
	require.Len(t, infos, 2)

	assert.Equal(t, KeyInfo{Key: "filtering.max_parallel", Type: "integer", DefaultValue: "4"}, infos[0])
	assert.Equal(t, "string", infos[1].Type)
	assert.Equal(t, "'flat'", infos[1].DefaultValue)
}

func TestTomlTypeAndValue(t *testing.T) {
	tests := []struct {
		value    any
		wantType string
		want     string
	}{
		{false, "boolean", "false"},
		{150, "integer", "150"},
		{"info", "string", "'info'"},
		{[]string{"a", "b"}, "array", "['a', 'b']"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantType, tomlType(tt.value))
		assert.Equal(t, tt.want, tomlValue(tt.value))
	}
}
