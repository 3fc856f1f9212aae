package rules

import (
	"math/bits"
	"strings"
)

// ResourceType is one bit of ResourceTypes.
type ResourceType uint16

const (
	ResourceStylesheet ResourceType = 1 << iota
	ResourceImage
	ResourceObject
	ResourceScript
	ResourceXMLHTTPRequest
	ResourceSubDocument
	ResourceFont
	ResourceMedia
	ResourceWebSocket
	ResourceWebRTC
	ResourcePing
	ResourceWebTransport
	ResourceWebBundle
	ResourceOther
)

// ResourceTypeCount is the number of distinct resource types.
const ResourceTypeCount = 14

var resourceTypeNames = [ResourceTypeCount]string{
	"stylesheet", "image", "object", "script", "xmlhttprequest", "subdocument",
	"font", "media", "websocket", "webrtc", "ping", "webtransport", "webbundle", "other",
}

// ResourceTypes is the set of implicitly matched request types.
type ResourceTypes uint16

// AllResourceTypes has every resource bit set.
const AllResourceTypes ResourceTypes = 1<<ResourceTypeCount - 1

func (s ResourceTypes) Has(t ResourceType) bool { return s&ResourceTypes(t) != 0 }
func (s ResourceTypes) Any() bool                { return s != 0 }
func (s ResourceTypes) None() bool               { return s == 0 }
func (s ResourceTypes) All() bool                { return s&AllResourceTypes == AllResourceTypes }
func (s ResourceTypes) Count() int               { return bits.OnesCount16(uint16(s)) }

func (s *ResourceTypes) Set(t ResourceType)   { *s |= ResourceTypes(t) }
func (s *ResourceTypes) Clear(t ResourceType) { *s &^= ResourceTypes(t) }

func (s ResourceTypes) String() string {
	return bitNames(uint64(s), resourceTypeNames[:])
}

// ExplicitType is one bit of ExplicitTypes.
type ExplicitType uint8

const (
	ExplicitDocument ExplicitType = 1 << iota
	ExplicitPopup
)

// ExplicitTypes is the set of types that must be named by a rule to match.
type ExplicitTypes uint8

const AllExplicitTypes ExplicitTypes = ExplicitTypes(ExplicitDocument | ExplicitPopup)

func (s ExplicitTypes) Has(t ExplicitType) bool { return s&ExplicitTypes(t) != 0 }
func (s ExplicitTypes) Any() bool                { return s != 0 }
func (s ExplicitTypes) None() bool               { return s == 0 }

func (s *ExplicitTypes) Set(t ExplicitType)   { *s |= ExplicitTypes(t) }
func (s *ExplicitTypes) Clear(t ExplicitType) { *s &^= ExplicitTypes(t) }

func (s ExplicitTypes) String() string {
	return bitNames(uint64(s), []string{"document", "popup"})
}

// ActivationType is one bit of ActivationTypes.
type ActivationType uint8

const (
	ActivationWholeDocument ActivationType = 1 << iota
	ActivationElementHide
	ActivationGenericHide
	ActivationGenericBlock
	ActivationAttributeAds
)

// ActivationTypes changes the scope of enforcement instead of matching resources.
type ActivationTypes uint8

func (s ActivationTypes) Has(t ActivationType) bool { return s&ActivationTypes(t) != 0 }
func (s ActivationTypes) Any() bool                  { return s != 0 }
func (s ActivationTypes) None() bool                 { return s == 0 }

func (s *ActivationTypes) Set(t ActivationType)   { *s |= ActivationTypes(t) }
func (s *ActivationTypes) Clear(t ActivationType) { *s &^= ActivationTypes(t) }

func (s ActivationTypes) String() string {
	return bitNames(uint64(s), []string{"document", "elemhide", "generichide", "genericblock", "attribute-ads"})
}

// Party restricts a rule to first- or third-party requests. Both bits set means either.
type Party uint8

const (
	PartyFirst Party = 1 << iota
	PartyThird

	PartyAll = PartyFirst | PartyThird
)

func (p Party) Has(o Party) bool { return p&o != 0 }

func (p Party) String() string {
	return bitNames(uint64(p), []string{"first-party", "third-party"})
}

// AnchorType tells where the pattern is anchored in the URL.
type AnchorType uint8

const (
	AnchorStart AnchorType = 1 << iota
	AnchorEnd
	AnchorHost
)

func (a AnchorType) Has(o AnchorType) bool { return a&o != 0 }

func (a *AnchorType) Set(o AnchorType)   { *a |= o }
func (a *AnchorType) Clear(o AnchorType) { *a &^= o }

// String renders the anchors the way they appear in filter syntax, without the pattern.
func (a AnchorType) String() string {
	switch {
	case a.Has(AnchorHost) && a.Has(AnchorEnd):
		return "||…|"
	case a.Has(AnchorHost):
		return "||"
	case a.Has(AnchorStart) && a.Has(AnchorEnd):
		return "|…|"
	case a.Has(AnchorStart):
		return "|"
	case a.Has(AnchorEnd):
		return "…|"
	}
	return ""
}

func bitNames(v uint64, names []string) string {
	var parts []string
	for i, name := range names {
		if v&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ",")
}
