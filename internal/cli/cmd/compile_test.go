package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	infrafiltering "github.com/bnema/blockrules/internal/infrastructure/filtering"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input  string
		format infrafiltering.Format
		ext    string
		want   string
	}{
		{"easylist.txt", infrafiltering.FormatFlat, ".dat", "easylist.flat.dat"},
		{"/lists/easylist.txt", infrafiltering.FormatIOS, ".json", "/lists/easylist.ios.json"},
		{"tds.json", infrafiltering.FormatIOS, ".json", "tds.ios.json"},
		{"hosts", infrafiltering.FormatFlat, ".dat", "hosts.flat.dat"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultOutputPath(tt.input, tt.format, tt.ext))
		})
	}
}
