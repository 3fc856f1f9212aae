package rules

import "time"

// FetchResult is the outcome of one fetch-parse-compile cycle of a rule source.
type FetchResult int

const (
	FetchSuccess FetchResult = iota
	FetchDownloadFailed
	FetchFileNotFound
	FetchFileReadError
	FetchFailedSavingParsedRules
	// FetchFileUnsupported means the input produced no usable rule at all.
	FetchFileUnsupported
	FetchUnknown
)

var fetchResultNames = map[FetchResult]string{
	FetchSuccess:                 "success",
	FetchDownloadFailed:          "download-failed",
	FetchFileNotFound:            "file-not-found",
	FetchFileReadError:           "file-read-error",
	FetchFailedSavingParsedRules: "failed-saving-parsed-rules",
	FetchFileUnsupported:         "file-unsupported",
	FetchUnknown:                 "unknown",
}

func (f FetchResult) String() string {
	if name, ok := fetchResultNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFetchResult maps the String form back to a FetchResult.
func ParseFetchResult(s string) FetchResult {
	for k, v := range fetchResultNames {
		if v == s {
			return k
		}
	}
	return FetchUnknown
}

// AdBlockMetadata is the header information of a filter list.
type AdBlockMetadata struct {
	Title    string        `json:"title,omitempty"`
	Homepage string        `json:"homepage,omitempty"`
	License  string        `json:"license,omitempty"`
	Version  string        `json:"version,omitempty"`
	Expires  time.Duration `json:"expires,omitempty"`
}

// RulesInfo counts the outcome of every parsed line.
type RulesInfo struct {
	ValidRules       int `json:"valid_rules"`
	InvalidRules     int `json:"invalid_rules"`
	UnsupportedRules int `json:"unsupported_rules"`
}

// TrackerOwner describes the entity behind a tracker domain.
type TrackerOwner struct {
	Name          string `json:"name,omitempty"`
	DisplayName   string `json:"displayName,omitempty"`
	PrivacyPolicy string `json:"privacyPolicy,omitempty"`
	URL           string `json:"url,omitempty"`
}

// TrackerInfo is side-channel data from tracker lists, keyed by domain in ParseResult.
type TrackerInfo struct {
	Owner      *TrackerOwner `json:"owner,omitempty"`
	Categories []string      `json:"categories,omitempty"`
}

// ParseResult is everything a single parse of a rule source produced.
// It is built fresh for every update and handed to exactly one compiler.
type ParseResult struct {
	Metadata AdBlockMetadata

	RequestFilterRules      []RequestFilterRule
	CosmeticRules           []CosmeticRule
	ScriptletInjectionRules []ScriptletInjectionRule

	FetchResult FetchResult
	RulesInfo   RulesInfo

	// TrackerInfos is only filled by tracker-list sources.
	TrackerInfos map[string]TrackerInfo
}

// NewParseResult returns an empty result with FetchSuccess.
func NewParseResult() *ParseResult {
	return &ParseResult{FetchResult: FetchSuccess}
}

// RuleCount is the number of rules of all kinds.
func (p *ParseResult) RuleCount() int {
	return len(p.RequestFilterRules) + len(p.CosmeticRules) + len(p.ScriptletInjectionRules)
}
