package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/blockrules/internal/domain/entity"
)

func TestRuleSource_CopyStateFrom(t *testing.T) {
	next := time.Date(2026, 5, 5, 12, 0, 0, 0, time.UTC)
	src := entity.NewRuleSource("easylist", "/lists/easylist.txt", entity.RuleSourceKindAdblock)
	src.FetchResult = "success"
	src.Title = "EasyList"
	src.ValidRules = 42
	src.Checksum = "abc"
	src.NextFetchAt = &next

	dst := entity.NewRuleSource("easylist", "/lists/easylist.txt", entity.RuleSourceKindAdblock)
	dst.CopyStateFrom(src)

	assert.Equal(t, "success", dst.FetchResult)
	assert.Equal(t, "EasyList", dst.Title)
	assert.Equal(t, 42, dst.ValidRules)
	assert.Equal(t, "abc", dst.Checksum)
	assert.Nil(t, dst.UpdatedAt)
	require.NotNil(t, dst.NextFetchAt)
	assert.NotSame(t, src.NextFetchAt, dst.NextFetchAt)
	assert.True(t, dst.NextFetchAt.Equal(next))
	assert.NotEqual(t, src.ID, dst.ID)
}
