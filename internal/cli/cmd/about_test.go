package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormats(t *testing.T) {
	assert.Equal(t, []string{"flat v1", "ios v1"}, outputFormats())
}
