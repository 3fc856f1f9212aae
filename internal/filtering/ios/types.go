package ios

// FormatVersion is written to the "version" key of every compiled ruleset.
const FormatVersion = 1

// Ruleset is the top-level content-blocker document.
type Ruleset struct {
	Network  RuleGroup     `json:"network"`
	Cosmetic CosmeticRules `json:"cosmetic"`
	Version  int           `json:"version"`
}

// RuleGroup holds content-blocker rules partitioned by evaluation stage. The
// consumer evaluates block.generic, generic-allow, block.specific, every
// block-allow-pairs tuple in order, allow and finally block-important.
type RuleGroup struct {
	Block           *BlockRules `json:"block,omitempty"`
	BlockAllowPairs [][]Rule    `json:"block-allow-pairs,omitempty"`
	Allow           []Rule      `json:"allow,omitempty"`
	GenericAllow    []Rule      `json:"generic-allow,omitempty"`
	BlockImportant  []Rule      `json:"block-important,omitempty"`
}

// BlockRules splits blocking rules by whether they carry if-domain constraints.
type BlockRules struct {
	Generic  []Rule `json:"generic,omitempty"`
	Specific []Rule `json:"specific,omitempty"`
}

// CosmeticRules is a RuleGroup plus the scriptlet table.
type CosmeticRules struct {
	RuleGroup
	// Scriptlets maps scriptlet name, then JSON-encoded arguments, to domain levels.
	Scriptlets map[string]map[string]*ScriptletLevels `json:"scriptlets,omitempty"`
}

// ScriptletLevels lists the alternating domain levels of one scriptlet
// invocation. Generic starts with an exclusion level, Specific with an
// inclusion level.
type ScriptletLevels struct {
	Generic  [][]string `json:"generic,omitempty"`
	Specific [][]string `json:"specific,omitempty"`
}

// Rule represents a content blocking rule
type Rule struct {
	Trigger Trigger `json:"trigger"`
	Action  Action  `json:"action"`
}

// Trigger defines when a rule should be applied
type Trigger struct {
	URLFilter                string   `json:"url-filter"`
	URLFilterIsCaseSensitive bool     `json:"url-filter-is-case-sensitive,omitempty"`
	IfDomain                 []string `json:"if-domain,omitempty"`
	UnlessDomain             []string `json:"unless-domain,omitempty"`
	IfTopURL                 []string `json:"if-top-url,omitempty"`
	ResourceType             []string `json:"resource-type,omitempty"`
	LoadType                 []string `json:"load-type,omitempty"`
	LoadContext              []string `json:"load-context,omitempty"`
}

// Action defines what to do when a rule matches
type Action struct {
	Type     string `json:"type"`
	Selector string `json:"selector,omitempty"`
}

// Action types
const (
	ActionTypeBlock               = "block"
	ActionTypeIgnorePreviousRules = "ignore-previous-rules"
	ActionTypeCSSDisplayNone      = "css-display-none"
)

// Resource types
const (
	ResourceTypeDocument   = "document"
	ResourceTypeImage      = "image"
	ResourceTypeStyleSheet = "style-sheet"
	ResourceTypeScript     = "script"
	ResourceTypeFont       = "font"
	ResourceTypeMedia      = "media"
	ResourceTypePing       = "ping"
	ResourceTypeFetch      = "fetch"
	ResourceTypeWebSocket  = "websocket"
	ResourceTypeOther      = "other"
	ResourceTypePopup      = "popup"
)

// Load types and contexts
const (
	LoadTypeFirstParty = "first-party"
	LoadTypeThirdParty = "third-party"

	LoadContextTopFrame   = "top-frame"
	LoadContextChildFrame = "child-frame"
)

// matchAll is the url-filter of rules constrained only by domain or top URL.
const matchAll = ".*"
