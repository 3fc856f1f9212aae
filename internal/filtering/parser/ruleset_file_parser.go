package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/bnema/blockrules/internal/filtering/rules"
	"github.com/bnema/blockrules/internal/logging"
)

// RulesetFileParser runs RuleParser over a whole filter list.
type RulesetFileParser struct {
	settings RuleSourceSettings
}

// NewRulesetFileParser returns a file parser using settings for every line.
func NewRulesetFileParser(settings RuleSourceSettings) *RulesetFileParser {
	return &RulesetFileParser{settings: settings}
}

// Parse reads every line of contents. A list without a single usable rule is
// reported as rules.FetchFileUnsupported.
func (f *RulesetFileParser) Parse(ctx context.Context, contents string) *rules.ParseResult {
	log := logging.Component(ctx, "rule-parser")

	result := rules.NewParseResult()
	lineParser := NewRuleParser(result, f.settings)

	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch res := lineParser.Parse(line); res {
		case ResultRequestFilterRule, ResultCosmeticRule, ResultScriptletInjectionRule:
			result.RulesInfo.ValidRules++
		case ResultError:
			result.RulesInfo.InvalidRules++
			log.Trace().Str("line", line).Msg("invalid rule")
		case ResultUnsupported:
			result.RulesInfo.UnsupportedRules++
			log.Trace().Str("line", line).Msg("unsupported rule")
		}
	}

	if result.RuleCount() == 0 {
		result.FetchResult = rules.FetchFileUnsupported
	}

	log.Debug().
		Int("valid", result.RulesInfo.ValidRules).
		Int("invalid", result.RulesInfo.InvalidRules).
		Int("unsupported", result.RulesInfo.UnsupportedRules).
		Str("fetch_result", result.FetchResult.String()).
		Msg("parsed filter list")

	return result
}

// ParseRuleSource picks the parser for data: tracker-list JSON when it decodes
// as an object with a "trackers" key, filter list text otherwise.
func ParseRuleSource(ctx context.Context, data []byte, settings RuleSourceSettings) *rules.ParseResult {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var sniff struct {
			Trackers json.RawMessage `json:"trackers"`
		}
		if err := json.Unmarshal(trimmed, &sniff); err == nil && sniff.Trackers != nil {
			return NewDuckDuckGoRulesParser().Parse(ctx, trimmed)
		}
	}

	return NewRulesetFileParser(settings).Parse(ctx, string(trimmed))
}
