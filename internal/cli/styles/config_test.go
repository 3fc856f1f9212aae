package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/infrastructure/config"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(testTheme())

	out := r.RenderConfigInfo("/tmp/blockrules/config.toml", 3)
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "new settings available")

	out = r.RenderConfigInfo("/tmp/blockrules/config.toml", 0)
	assert.NotContains(t, out, "new settings available")
}

func TestConfigRenderer_RenderSummary(t *testing.T) {
	r := styles.NewConfigRenderer(testTheme())

	cfg := config.DefaultConfig()
	cfg.Sources = nil
	out := r.RenderSummary(cfg)
	assert.Contains(t, out, "No sources configured")

	cfg.Sources = []config.SourceConfig{
		{Name: "easylist", Path: "/lists/easylist.txt", Kind: "adblock"},
	}
	out = r.RenderSummary(cfg)
	assert.Contains(t, out, "Sources (1):")
	assert.Contains(t, out, "easylist")
	assert.Contains(t, out, "/lists/easylist.txt")
}

func TestConfigRenderer_RenderMissingKeys(t *testing.T) {
	r := styles.NewConfigRenderer(testTheme())

	assert.Empty(t, r.RenderMissingKeys(nil))

	out := r.RenderMissingKeys([]config.KeyInfo{
		{Key: "filtering.max_parallel", Type: "int", DefaultValue: "4"},
	})
	assert.Contains(t, out, "Missing settings (1)")
	assert.Contains(t, out, "filtering.max_parallel")
	assert.Contains(t, out, "int")
}

func TestConfigRenderer_RenderMigrationSuccess(t *testing.T) {
	r := styles.NewConfigRenderer(testTheme())

	out := r.RenderMigrationSuccess(2, "/home/user/.config/blockrules/config.toml")
	assert.Contains(t, out, "Added")
	assert.Contains(t, out, "config.toml")
	assert.NotContains(t, out, "/home/user")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(testTheme())

	out := r.RenderError(errors.New("boom"))
	assert.Contains(t, out, "Config error: boom")
}
