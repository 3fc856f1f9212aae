package filtering

import (
	"math/rand/v2"
	"time"
)

const (
	// MinFetchDelay and MaxFetchDelay bound the interval between updates of a source.
	MinFetchDelay = time.Hour
	MaxFetchDelay = 14 * 24 * time.Hour

	// DefaultFetchDelay applies when a list does not declare Expires.
	DefaultFetchDelay = 24 * time.Hour

	jitterDivisor = 10
)

// NextFetchDelay clamps a list's Expires to [MinFetchDelay, MaxFetchDelay] and
// adds up to a tenth of it as jitter.
func NextFetchDelay(expires time.Duration, jitter func(limit time.Duration) time.Duration) time.Duration {
	d := expires
	if d <= 0 {
		d = DefaultFetchDelay
	}
	d = min(max(d, MinFetchDelay), MaxFetchDelay)
	if jitter != nil {
		d += jitter(d / jitterDivisor)
	}
	return d
}

// RandomJitter returns a uniform duration in [0, limit).
func RandomJitter(limit time.Duration) time.Duration {
	if limit <= 0 {
		return 0
	}
	return rand.N(limit)
}
