package build

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_ResolveFrom(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.25.0",
		Main:      debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0b6fd2e41a9c"},
			{Key: "vcs.time", Value: "2026-05-01T10:00:00Z"},
		},
	}

	got := Info{Version: "dev", Commit: "unknown", BuildDate: "unknown"}.resolveFrom(bi)
	assert.Equal(t, "v0.3.1", got.Version)
	assert.Equal(t, "0b6fd2e41a9c", got.Commit)
	assert.Equal(t, "2026-05-01T10:00:00Z", got.BuildDate)
	assert.Equal(t, "go1.25.0", got.GoVersion)
	assert.Equal(t, "v0.3.1 (0b6fd2e)", got.String())
}

func TestInfo_ResolveKeepsLdflags(t *testing.T) {
	bi := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffff"}},
	}

	got := Info{Version: "1.0.0", Commit: "abc1234", GoVersion: "go1.24.0"}.resolveFrom(bi)
	assert.Equal(t, "1.0.0", got.Version)
	assert.Equal(t, "abc1234", got.Commit)
	assert.Equal(t, "go1.24.0", got.GoVersion)
}

func TestInfo_StringWithoutCommit(t *testing.T) {
	assert.Equal(t, "dev", Info{Version: "dev", Commit: "unknown"}.String())
}
