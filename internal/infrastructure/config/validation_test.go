package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *Config {
	cfg := DefaultConfig()
	cfg.Filtering.OutputDir = "/tmp/out"
	cfg.Database.Path = "/tmp/blockrules.db"
	return cfg
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "log file without size", mutate: func(c *Config) {
			c.Logging.File = "/tmp/x.log"
			c.Logging.MaxSizeMB = 0
		}, wantErr: "logging.max_size_mb"},
		{name: "bad ruleset format", mutate: func(c *Config) { c.Filtering.Format = "wasm" }, wantErr: "filtering.format"},
		{name: "no output dir", mutate: func(c *Config) { c.Filtering.OutputDir = "" }, wantErr: "filtering.output_dir"},
		{name: "zero parallel", mutate: func(c *Config) { c.Filtering.MaxParallel = 0 }, wantErr: "filtering.max_parallel"},
		{name: "no database", mutate: func(c *Config) { c.Database.Path = "" }, wantErr: "database.path"},
		{name: "duplicate source", mutate: func(c *Config) {
			c.Sources = []SourceConfig{{Name: "a", Path: "/a"}, {Name: "a", Path: "/b"}}
		}, wantErr: `"a" is used twice`},
		{name: "bad kind", mutate: func(c *Config) {
			c.Sources = []SourceConfig{{Name: "a", Path: "/a", Kind: "hosts"}}
		}, wantErr: "sources[0].kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := validTestConfig()
	cfg.Logging.Level = "loud"
	cfg.Filtering.Format = "wasm"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "filtering.format")
}
