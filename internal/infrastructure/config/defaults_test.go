package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, RulesetFormatFlat, cfg.Filtering.Format)
	assert.Equal(t, 4, cfg.Filtering.MaxParallel)
	assert.Empty(t, cfg.Sources)

	cfg.Filtering.OutputDir = "/tmp/out"
	cfg.Database.Path = "/tmp/db"
	require.NoError(t, validateConfig(cfg))
}

func TestSourceConfig_Settings(t *testing.T) {
	on := true
	off := false
	defaults := FilteringConfig{NakedHostnameIsPureHost: true}

	naked, snippets := SourceConfig{}.Settings(defaults)
	assert.True(t, naked)
	assert.False(t, snippets)

	naked, snippets = SourceConfig{NakedHostnameIsPureHost: &off, AllowAbpSnippets: &on}.Settings(defaults)
	assert.False(t, naked)
	assert.True(t, snippets)
}
