package flat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/blockrules/internal/filtering"
	"github.com/bnema/blockrules/internal/filtering/flat/fb"
	"github.com/bnema/blockrules/internal/filtering/parser"
	"github.com/bnema/blockrules/internal/filtering/rules"
)

const testList = `! Title: flat test
||ads.example.com^$script,third-party,domain=news.com|~sub.news.com
@@||ads.example.com/ok^$match-case,domain=news.com|~sub.news.com
/banner\d+\.gif/$image
bad-resource$csp=script-src none
example.com,~shop.example.com##.ad-slot
example.com##+js(set-constant, ads, true)
`

func parseTestList(t *testing.T) *rules.ParseResult {
	t.Helper()
	result := parser.NewRulesetFileParser(parser.RuleSourceSettings{}).Parse(context.Background(), testList)
	require.Equal(t, rules.FetchSuccess, result.FetchResult)
	require.Len(t, result.RequestFilterRules, 4)
	return result
}

func readRulesList(t *testing.T, path string) *fb.RulesList {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	buf, err := ReadHeader(data)
	require.NoError(t, err)
	return fb.GetRootAsRulesList(buf, 0)
}

func readStrings(n int, get func(int) []byte) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(get(i))
	}
	return out
}

func TestCompileFlatRules(t *testing.T) {
	result := parseTestList(t)
	path := filepath.Join(t.TempDir(), "out", "rules.dat")

	checksum, err := CompileFlatRules(context.Background(), result, path)
	require.NoError(t, err)
	assert.NotEmpty(t, checksum)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Header, string(data[:len(Header)]))
	assert.Equal(t, filtering.Checksum(data[len(Header):]), checksum)

	list := readRulesList(t, path)
	require.Equal(t, 4, list.RequestFilterRulesLength())
	require.Equal(t, 1, list.CosmeticRulesLength())
	require.Equal(t, 1, list.ScriptletInjectionRulesLength())

	var block fb.RequestFilterRule
	require.True(t, list.RequestFilterRules(&block, 0))
	assert.Equal(t, fb.DecisionModify, block.Decision())
	assert.Equal(t, "ads.example.com", string(block.Host()))
	assert.Equal(t, "ads.example.com^", string(block.Pattern()))
	assert.Equal(t, byte(fb.AnchorFlagHost), block.AnchorType())
	assert.Equal(t, uint16(rules.ResourceScript), block.ResourceTypes())
	assert.Equal(t, byte(fb.OptionFlagThirdParty|fb.OptionFlagModifyBlock), block.Options())
	assert.Equal(t, []string{"news.com"}, readStrings(block.IncludedDomainsLength(), block.IncludedDomains))
	assert.Equal(t, []string{"sub.news.com"}, readStrings(block.ExcludedDomainsLength(), block.ExcludedDomains))

	var allow fb.RequestFilterRule
	require.True(t, list.RequestFilterRules(&allow, 1))
	assert.Equal(t, fb.DecisionPass, allow.Decision())
	assert.NotZero(t, allow.Options()&byte(fb.OptionFlagMatchCase))

	var regex fb.RequestFilterRule
	require.True(t, list.RequestFilterRules(&regex, 2))
	assert.Equal(t, fb.PatternTypeRegex, regex.PatternType())
	assert.Equal(t, `banner\d+\.gif`, string(regex.Pattern()))
	assert.Equal(t, "banner*.gif", string(regex.NgramSearchString()))
	assert.Nil(t, regex.Host())

	var csp fb.RequestFilterRule
	require.True(t, list.RequestFilterRules(&csp, 3))
	assert.Equal(t, fb.ModifierCsp, csp.Modifier())
	assert.Equal(t, []string{"script-src none"}, readStrings(csp.ModifierValuesLength(), csp.ModifierValues))
	assert.Equal(t, byte(fb.OptionFlagFirstParty|fb.OptionFlagThirdParty|fb.OptionFlagIsCspRule), csp.Options())

	var cosmetic fb.CosmeticRule
	require.True(t, list.CosmeticRules(&cosmetic, 0))
	assert.Equal(t, ".ad-slot", string(cosmetic.Selector()))
	core := cosmetic.Core(nil)
	require.NotNil(t, core)
	assert.False(t, core.IsAllowRule())
	assert.Equal(t, []string{"example.com"}, readStrings(core.IncludedDomainsLength(), core.IncludedDomains))
	assert.Equal(t, []string{"shop.example.com"}, readStrings(core.ExcludedDomainsLength(), core.ExcludedDomains))

	var scriptlet fb.ScriptletInjectionRule
	require.True(t, list.ScriptletInjectionRules(&scriptlet, 0))
	assert.Equal(t, "set-constant", string(scriptlet.ScriptletName()))
	assert.Equal(t, []string{"ads", "true"}, readStrings(scriptlet.ArgumentsLength(), scriptlet.Arguments))
}

func vectorPos(t *testing.T, rule *fb.RequestFilterRule, vtableOffset flatbuffers.VOffsetT) flatbuffers.UOffsetT {
	t.Helper()
	tab := rule.Table()
	o := flatbuffers.UOffsetT(tab.Offset(vtableOffset))
	require.NotZero(t, o)
	return tab.Vector(o)
}

func TestSerialize_SharesIdenticalDomainLists(t *testing.T) {
	result := parseTestList(t)
	list := fb.GetRootAsRulesList(Serialize(result), 0)

	var a, b fb.RequestFilterRule
	require.True(t, list.RequestFilterRules(&a, 0))
	require.True(t, list.RequestFilterRules(&b, 1))

	const includedDomainsSlot = 24
	assert.Equal(t, vectorPos(t, &a, includedDomainsSlot), vectorPos(t, &b, includedDomainsSlot))
}

func TestSerialize_Deterministic(t *testing.T) {
	result := parseTestList(t)
	assert.Equal(t, Serialize(result), Serialize(result))
}

func TestSortForSharing(t *testing.T) {
	got := SortForSharing(rules.NewStringSet("b.com", "a.com", "long.example.com", "x.org"))
	assert.Equal(t, []string{"long.example.com", "a.com", "b.com", "x.org"}, got)
}

func TestSerialize_Empty(t *testing.T) {
	list := fb.GetRootAsRulesList(Serialize(rules.NewParseResult()), 0)
	assert.Zero(t, list.RequestFilterRulesLength())
	assert.Zero(t, list.CosmeticRulesLength())
	assert.Zero(t, list.ScriptletInjectionRulesLength())
}

func TestCompileFlatRules_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := CompileFlatRules(context.Background(), parseTestList(t), filepath.Join(blocker, "rules.dat"))
	require.Error(t, err)
	assert.ErrorIs(t, err, filtering.ErrCreateOutputDir)
}

func TestReadHeader(t *testing.T) {
	_, err := ReadHeader([]byte("nope"))
	assert.ErrorIs(t, err, filtering.ErrInvalidArtifact)
}
