package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceTypes(t *testing.T) {
	var s ResourceTypes
	assert.True(t, s.None())

	s.Set(ResourceImage)
	s.Set(ResourceScript)
	assert.True(t, s.Has(ResourceImage))
	assert.False(t, s.Has(ResourceFont))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, "image,script", s.String())

	s.Clear(ResourceImage)
	assert.Equal(t, "script", s.String())

	assert.True(t, AllResourceTypes.All())
	assert.Equal(t, ResourceTypeCount, AllResourceTypes.Count())
	assert.True(t, AllResourceTypes.Has(ResourceOther))
}

func TestNewRequestFilterRuleDefaults(t *testing.T) {
	r := NewRequestFilterRule()

	assert.Equal(t, DecisionModify, r.Decision)
	assert.Equal(t, PartyAll, r.Party)
	assert.True(t, r.ModifyBlock)
	assert.False(t, r.HasPurpose())
	assert.True(t, r.IsGeneric())

	r.ExplicitTypes.Set(ExplicitPopup)
	assert.True(t, r.HasPurpose())
}

func TestRequestFilterRuleClone(t *testing.T) {
	r := NewRequestFilterRule()
	r.IncludedDomains.Add("example.com")

	c := r.Clone()
	c.IncludedDomains.Add("other.com")

	require.Len(t, r.IncludedDomains, 1)
	assert.Len(t, c.IncludedDomains, 2)
}

func TestStringSetSorted(t *testing.T) {
	s := NewStringSet("b.com", "a.com", "c.com")
	assert.Equal(t, []string{"a.com", "b.com", "c.com"}, s.Sorted())

	other := NewStringSet("d.com")
	s.Union(other)
	assert.True(t, s.Has("d.com"))
}

func TestFetchResultRoundTrip(t *testing.T) {
	for _, f := range []FetchResult{FetchSuccess, FetchFileUnsupported, FetchFailedSavingParsedRules} {
		assert.Equal(t, f, ParseFetchResult(f.String()))
	}
	assert.Equal(t, FetchUnknown, ParseFetchResult("nope"))
}

func TestParseResultRuleCount(t *testing.T) {
	p := NewParseResult()
	assert.Equal(t, FetchSuccess, p.FetchResult)
	assert.Zero(t, p.RuleCount())

	p.RequestFilterRules = append(p.RequestFilterRules, NewRequestFilterRule())
	p.CosmeticRules = append(p.CosmeticRules, CosmeticRule{Selector: ".ad"})
	assert.Equal(t, 2, p.RuleCount())
}
