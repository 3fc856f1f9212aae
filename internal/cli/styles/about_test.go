package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/domain/build"
)

func TestAboutRenderer_Render(t *testing.T) {
	out := styles.NewAboutRenderer(styles.NewTheme()).Render(build.Info{
		Version: "v0.3.1",
		Commit:  "0b6fd2e41a9c",
	}, []string{"flat v1", "ios v1"})

	assert.Contains(t, out, "v0.3.1")
	assert.Contains(t, out, "0b6fd2e")
	assert.NotContains(t, out, "0b6fd2e41")
	assert.Contains(t, out, "flat v1, ios v1")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, build.RepoURL)
}
