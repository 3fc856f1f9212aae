package styles_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/blockrules/internal/cli/styles"
	"github.com/bnema/blockrules/internal/domain/entity"
)

func TestSourceRow_NeverUpdated(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := entity.NewRuleSource("easylist", "/lists/easylist.txt", entity.RuleSourceKindAdblock)

	row := styles.SourceRow(s, now)
	require.Len(t, row, len(styles.SourceTableColumns()))
	assert.Equal(t, "easylist", row[0])
	assert.Equal(t, "adblock", row[1])
	assert.Equal(t, "-", row[2])
	assert.Equal(t, "0", row[3])
	assert.Equal(t, "never", row[5])
	assert.Equal(t, "due", row[6])
}

func TestSourceRow_Updated(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := now.Add(-2 * time.Hour)
	next := now.Add(3 * 24 * time.Hour)

	s := entity.NewRuleSource("trackers", "/lists/tds.json", entity.RuleSourceKindDuckDuckGo)
	s.FetchResult = "success"
	s.ValidRules = 1234
	s.InvalidRules = 2
	s.UnsupportedRules = 1
	s.UpdatedAt = &updated
	s.NextFetchAt = &next

	row := styles.SourceRow(s, now)
	assert.Equal(t, "success", row[2])
	assert.Equal(t, "1.2K", row[3])
	assert.Equal(t, "3", row[4])
	assert.Equal(t, "2h ago", row[5])
	assert.Equal(t, "in 3d", row[6])
}

func TestRenderSourceTable(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sources := []*entity.RuleSource{
		entity.NewRuleSource("easylist", "/lists/easylist.txt", entity.RuleSourceKindAdblock),
		entity.NewRuleSource("hosts", "/etc/hosts.block", entity.RuleSourceKindAuto),
	}

	out := styles.RenderSourceTable(styles.NewTheme(), sources, now)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "easylist")
	assert.Contains(t, out, "hosts")
}
