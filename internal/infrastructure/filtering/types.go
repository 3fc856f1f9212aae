package filtering

import (
	"fmt"
	"time"

	"github.com/bnema/blockrules/internal/domain/entity"
	"github.com/bnema/blockrules/internal/filtering/rules"
)

// Format names the artifact a handler produces.
type Format string

const (
	// FormatFlat is the flatbuffers ruleset read by the native matching engine.
	FormatFlat Format = "flat"
	// FormatIOS is the content-blocker JSON.
	FormatIOS Format = "ios"
)

// ParseFormat validates a configured format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatFlat, FormatIOS:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown ruleset format %q (want %q or %q)", s, FormatFlat, FormatIOS)
	}
}

// UpdateResult is what one run of the pipeline produced for a source.
type UpdateResult struct {
	Source       *entity.RuleSource
	FetchResult  rules.FetchResult
	Metadata     rules.AdBlockMetadata
	RulesInfo    rules.RulesInfo
	Checksum     string
	ArtifactPath string
	TrackerInfos map[string]rules.TrackerInfo
	NextFetchIn  time.Duration
}

// Succeeded reports whether a fresh artifact was written.
func (r *UpdateResult) Succeeded() bool {
	return r != nil && r.FetchResult == rules.FetchSuccess
}

// SourceState is where a source is in its update cycle.
type SourceState string

const (
	// StateUpdating means the source is being parsed or compiled.
	StateUpdating SourceState = "updating"
	// StateUpToDate means the last update wrote a fresh artifact.
	StateUpToDate SourceState = "up-to-date"
	// StateFailed means the last update did not produce an artifact.
	StateFailed SourceState = "failed"
)

// SourceStatus is reported to the status callback on every transition.
type SourceStatus struct {
	SourceID entity.RuleSourceID
	Name     string
	State    SourceState
	Message  string
}
