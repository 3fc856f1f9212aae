// Package flat compiles a ParseResult into the flatbuffers ruleset read by
// the native matching engine.
package flat

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/bnema/blockrules/internal/filtering"
	"github.com/bnema/blockrules/internal/filtering/flat/fb"
	"github.com/bnema/blockrules/internal/filtering/rules"
	"github.com/bnema/blockrules/internal/logging"
)

// Header precedes the flatbuffer in every artifact.
const Header = "blockrules-flat-ruleset:v1\n"

const initialBufferSize = 1 << 16

// CompileFlatRules serializes result to outputPath and returns the checksum
// of the serialized buffer.
func CompileFlatRules(ctx context.Context, result *rules.ParseResult, outputPath string) (string, error) {
	log := logging.Component(ctx, "flat-compiler")

	buf := Serialize(result)
	if err := filtering.WriteArtifact(outputPath, []byte(Header), buf); err != nil {
		log.Error().Err(err).Str("path", outputPath).Msg("failed to write flat ruleset")
		return "", err
	}

	checksum := filtering.Checksum(buf)
	log.Debug().
		Str("path", outputPath).
		Int("bytes", len(buf)).
		Int("request_filter_rules", len(result.RequestFilterRules)).
		Int("cosmetic_rules", len(result.CosmeticRules)).
		Int("scriptlet_rules", len(result.ScriptletInjectionRules)).
		Str("checksum", checksum).
		Msg("compiled flat ruleset")

	return checksum, nil
}

// Serialize builds the flatbuffer for result without the header.
func Serialize(result *rules.ParseResult) []byte {
	c := &compiler{
		builder: flatbuffers.NewBuilder(initialBufferSize),
		vectors: make(map[string]flatbuffers.UOffsetT),
	}

	requestRules := make([]flatbuffers.UOffsetT, 0, len(result.RequestFilterRules))
	for i := range result.RequestFilterRules {
		requestRules = append(requestRules, c.addRequestFilterRule(&result.RequestFilterRules[i]))
	}

	cosmeticRules := make([]flatbuffers.UOffsetT, 0, len(result.CosmeticRules))
	for i := range result.CosmeticRules {
		cosmeticRules = append(cosmeticRules, c.addCosmeticRule(&result.CosmeticRules[i]))
	}

	scriptletRules := make([]flatbuffers.UOffsetT, 0, len(result.ScriptletInjectionRules))
	for i := range result.ScriptletInjectionRules {
		scriptletRules = append(scriptletRules, c.addScriptletRule(&result.ScriptletInjectionRules[i]))
	}

	requestVec := c.offsetVector(requestRules)
	cosmeticVec := c.offsetVector(cosmeticRules)
	scriptletVec := c.offsetVector(scriptletRules)

	b := c.builder
	fb.RulesListStart(b)
	fb.RulesListAddRequestFilterRules(b, requestVec)
	fb.RulesListAddCosmeticRules(b, cosmeticVec)
	fb.RulesListAddScriptletInjectionRules(b, scriptletVec)
	fb.FinishRulesListBuffer(b, fb.RulesListEnd(b))

	return b.FinishedBytes()
}

type compiler struct {
	builder *flatbuffers.Builder
	// vectors memoizes string vectors by their joined content.
	vectors map[string]flatbuffers.UOffsetT
}

func (c *compiler) addRequestFilterRule(rule *rules.RequestFilterRule) flatbuffers.UOffsetT {
	b := c.builder

	var host, pattern, ngram flatbuffers.UOffsetT
	if rule.Host != "" {
		host = b.CreateSharedString(rule.Host)
	}
	if rule.Pattern != "" {
		pattern = b.CreateSharedString(rule.Pattern)
	}
	if rule.NgramSearchString != "" {
		ngram = b.CreateSharedString(rule.NgramSearchString)
	}
	included := c.stringSet(rule.IncludedDomains)
	excluded := c.stringSet(rule.ExcludedDomains)
	modifierValues := c.stringSet(rule.ModifierValues)

	fb.RequestFilterRuleStart(b)
	fb.RequestFilterRuleAddDecision(b, decision(rule.Decision))
	fb.RequestFilterRuleAddOptions(b, optionFlags(rule))
	fb.RequestFilterRuleAddResourceTypes(b, uint16(rule.ResourceTypes))
	fb.RequestFilterRuleAddExplicitTypes(b, byte(rule.ExplicitTypes))
	fb.RequestFilterRuleAddActivationTypes(b, byte(rule.ActivationTypes))
	fb.RequestFilterRuleAddPatternType(b, patternType(rule.PatternType))
	fb.RequestFilterRuleAddAnchorType(b, anchorFlags(rule.AnchorType))
	if host != 0 {
		fb.RequestFilterRuleAddHost(b, host)
	}
	if pattern != 0 {
		fb.RequestFilterRuleAddPattern(b, pattern)
	}
	if ngram != 0 {
		fb.RequestFilterRuleAddNgramSearchString(b, ngram)
	}
	if included != 0 {
		fb.RequestFilterRuleAddIncludedDomains(b, included)
	}
	if excluded != 0 {
		fb.RequestFilterRuleAddExcludedDomains(b, excluded)
	}
	fb.RequestFilterRuleAddModifier(b, modifier(rule.Modifier))
	if modifierValues != 0 {
		fb.RequestFilterRuleAddModifierValues(b, modifierValues)
	}
	return fb.RequestFilterRuleEnd(b)
}

func (c *compiler) addCore(core *rules.ContentInjectionRuleCore) flatbuffers.UOffsetT {
	b := c.builder
	included := c.stringSet(core.IncludedDomains)
	excluded := c.stringSet(core.ExcludedDomains)

	fb.ContentInjectionRuleCoreStart(b)
	fb.ContentInjectionRuleCoreAddIsAllowRule(b, core.IsAllowRule)
	if included != 0 {
		fb.ContentInjectionRuleCoreAddIncludedDomains(b, included)
	}
	if excluded != 0 {
		fb.ContentInjectionRuleCoreAddExcludedDomains(b, excluded)
	}
	return fb.ContentInjectionRuleCoreEnd(b)
}

func (c *compiler) addCosmeticRule(rule *rules.CosmeticRule) flatbuffers.UOffsetT {
	b := c.builder
	core := c.addCore(&rule.Core)
	selector := b.CreateSharedString(rule.Selector)

	fb.CosmeticRuleStart(b)
	fb.CosmeticRuleAddCore(b, core)
	fb.CosmeticRuleAddSelector(b, selector)
	return fb.CosmeticRuleEnd(b)
}

func (c *compiler) addScriptletRule(rule *rules.ScriptletInjectionRule) flatbuffers.UOffsetT {
	b := c.builder
	core := c.addCore(&rule.Core)
	name := b.CreateSharedString(rule.ScriptletName)
	// argument order is significant, no sorting
	args := c.stringVector(rule.Arguments)

	fb.ScriptletInjectionRuleStart(b)
	fb.ScriptletInjectionRuleAddCore(b, core)
	fb.ScriptletInjectionRuleAddScriptletName(b, name)
	fb.ScriptletInjectionRuleAddArguments(b, args)
	return fb.ScriptletInjectionRuleEnd(b)
}

// stringSet serializes set in canonical order, or returns 0 for an empty set.
func (c *compiler) stringSet(set rules.StringSet) flatbuffers.UOffsetT {
	if len(set) == 0 {
		return 0
	}
	return c.stringVector(SortForSharing(set))
}

// stringVector returns a shared vector for values, creating it on first use.
func (c *compiler) stringVector(values []string) flatbuffers.UOffsetT {
	key := strings.Join(values, "\x00")
	if len(values) == 0 {
		key = "\x01empty"
	}
	if off, ok := c.vectors[key]; ok {
		return off
	}

	offsets := make([]flatbuffers.UOffsetT, len(values))
	for i, v := range values {
		offsets[i] = c.builder.CreateSharedString(v)
	}
	off := c.offsetVector(offsets)
	c.vectors[key] = off
	return off
}

func (c *compiler) offsetVector(offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b := c.builder
	b.StartVector(4, len(offsets), 4)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}

// SortForSharing orders strings by descending length, then lexicographically,
// so equal sets always serialize identically.
func SortForSharing(set rules.StringSet) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return out
}

func optionFlags(rule *rules.RequestFilterRule) byte {
	var flags fb.OptionFlag
	if rule.IsCaseSensitive {
		flags |= fb.OptionFlagMatchCase
	}
	if rule.Party.Has(rules.PartyFirst) {
		flags |= fb.OptionFlagFirstParty
	}
	if rule.Party.Has(rules.PartyThird) {
		flags |= fb.OptionFlagThirdParty
	}
	if rule.ModifyBlock {
		flags |= fb.OptionFlagModifyBlock
	}
	if rule.IsCspRule {
		flags |= fb.OptionFlagIsCspRule
	}
	return byte(flags)
}

func anchorFlags(a rules.AnchorType) byte {
	var flags fb.AnchorFlag
	if a.Has(rules.AnchorStart) {
		flags |= fb.AnchorFlagStart
	}
	if a.Has(rules.AnchorEnd) {
		flags |= fb.AnchorFlagEnd
	}
	if a.Has(rules.AnchorHost) {
		flags |= fb.AnchorFlagHost
	}
	return byte(flags)
}

func decision(d rules.Decision) fb.Decision {
	switch d {
	case rules.DecisionPass:
		return fb.DecisionPass
	case rules.DecisionModifyImportant:
		return fb.DecisionModifyImportant
	default:
		return fb.DecisionModify
	}
}

func patternType(p rules.PatternType) fb.PatternType {
	switch p {
	case rules.PatternWildcarded:
		return fb.PatternTypeWildcarded
	case rules.PatternRegex:
		return fb.PatternTypeRegex
	default:
		return fb.PatternTypePlain
	}
}

func modifier(m rules.Modifier) fb.Modifier {
	switch m {
	case rules.ModifierRedirect:
		return fb.ModifierRedirect
	case rules.ModifierCsp:
		return fb.ModifierCsp
	case rules.ModifierAdQueryTrigger:
		return fb.ModifierAdQueryTrigger
	default:
		return fb.ModifierNone
	}
}

// ReadHeader splits an artifact into its buffer, checking the version header.
func ReadHeader(data []byte) ([]byte, error) {
	if !strings.HasPrefix(string(data), Header) {
		return nil, fmt.Errorf("%w: missing flat ruleset header", filtering.ErrInvalidArtifact)
	}
	return data[len(Header):], nil
}
