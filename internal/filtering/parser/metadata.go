package parser

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var expiresPattern = regexp.MustCompile(`^(\d+)\s*(d|days?|h|hours?)\b`)

// parseMetadata handles the text after '!'.
func (p *RuleParser) parseMetadata(comment string) Result {
	key, value, ok := strings.Cut(comment, ":")
	if !ok {
		return ResultComment
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if value == "" {
		return ResultComment
	}

	meta := &p.result.Metadata
	switch key {
	case "title":
		meta.Title = value
	case "homepage":
		u, err := url.Parse(value)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ResultComment
		}
		meta.Homepage = value
	case "licence", "license":
		meta.License = value
	case "version":
		meta.Version = value
	case "expires":
		if d, ok := parseExpires(value); ok {
			meta.Expires = d
		}
	default:
		return ResultComment
	}
	return ResultMetadata
}

// parseExpires reads "4 days", "12 hours", "4d" or "12h", ignoring trailing text.
func parseExpires(value string) (time.Duration, bool) {
	m := expiresPattern.FindStringSubmatch(strings.ToLower(value))
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, false
	}
	if strings.HasPrefix(m[2], "d") {
		return time.Duration(n) * 24 * time.Hour, true
	}
	return time.Duration(n) * time.Hour, true
}
