package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// RuleSourceID uniquely identifies a configured filter list.
type RuleSourceID string

// NewRuleSourceID returns a random source ID.
func NewRuleSourceID() RuleSourceID {
	return RuleSourceID(uuid.NewString())
}

// RuleSourceKind selects the parser used for a source.
type RuleSourceKind string

const (
	// RuleSourceKindAuto sniffs the content: JSON with "trackers" is a
	// DuckDuckGo list, anything else is filter-list text.
	RuleSourceKindAuto       RuleSourceKind = "auto"
	RuleSourceKindAdblock    RuleSourceKind = "adblock"
	RuleSourceKindDuckDuckGo RuleSourceKind = "duckduckgo"
)

// RuleSource is a local filter list together with the state of its last update.
type RuleSource struct {
	ID   RuleSourceID
	Name string
	Path string
	Kind RuleSourceKind

	NakedHostnameIsPureHost bool
	AllowAbpSnippets        bool

	// Filled after each update.
	FetchResult      string
	Title            string
	Homepage         string
	License          string
	Version          string
	ValidRules       int
	InvalidRules     int
	UnsupportedRules int
	Checksum         string
	ArtifactPath     string
	UpdatedAt        *time.Time
	NextFetchAt      *time.Time
}

// CopyStateFrom copies the fields filled by an update from other.
func (s *RuleSource) CopyStateFrom(other *RuleSource) {
	s.FetchResult = other.FetchResult
	s.Title = other.Title
	s.Homepage = other.Homepage
	s.License = other.License
	s.Version = other.Version
	s.ValidRules = other.ValidRules
	s.InvalidRules = other.InvalidRules
	s.UnsupportedRules = other.UnsupportedRules
	s.Checksum = other.Checksum
	s.ArtifactPath = other.ArtifactPath
	s.UpdatedAt = copyTime(other.UpdatedAt)
	s.NextFetchAt = copyTime(other.NextFetchAt)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// NewRuleSource creates a source with a fresh ID.
func NewRuleSource(name, path string, kind RuleSourceKind) *RuleSource {
	if kind == "" {
		kind = RuleSourceKindAuto
	}
	return &RuleSource{
		ID:   NewRuleSourceID(),
		Name: name,
		Path: path,
		Kind: kind,
	}
}

// IsDue reports whether the source should be updated at now.
func (s *RuleSource) IsDue(now time.Time) bool {
	return s.NextFetchAt == nil || !now.Before(*s.NextFetchAt)
}

func (s *RuleSource) Validate() error {
	if s == nil || s.ID == "" || s.Name == "" || s.Path == "" {
		return ErrInvalidRuleSource
	}
	switch s.Kind {
	case RuleSourceKindAuto, RuleSourceKindAdblock, RuleSourceKindDuckDuckGo:
		return nil
	default:
		return ErrInvalidRuleSource
	}
}

var ErrInvalidRuleSource = errors.New("invalid rule source")

// TrackerInfo is the owner and category data a tracker list publishes for one domain.
type TrackerInfo struct {
	Domain           string
	OwnerName        string
	OwnerDisplayName string
	PrivacyPolicy    string
	URL              string
	Categories       []string
}
