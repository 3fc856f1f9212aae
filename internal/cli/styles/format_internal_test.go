package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "999", formatInt(999))
	assert.Equal(t, "1K", formatInt(1000))
	assert.Equal(t, "1.2K", formatInt(1234))
	assert.Equal(t, "56.7K", formatInt(56789))
	assert.Equal(t, "1.5M", formatInt(1500000))
}

func TestShortDuration(t *testing.T) {
	assert.Equal(t, "0m", shortDuration(30*time.Second))
	assert.Equal(t, "59m", shortDuration(59*time.Minute))
	assert.Equal(t, "1h", shortDuration(time.Hour))
	assert.Equal(t, "6d", shortDuration(6*24*time.Hour))
	assert.Equal(t, "1w", shortDuration(7*24*time.Hour))
}
