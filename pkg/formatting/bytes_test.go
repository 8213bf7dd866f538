package formatting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/docudash/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2048", 2048},
		{"1KB", 1024},
		{"1 mb", 1 << 20},
		{"1.5MB", 3 << 19},
		{" 2GB ", 2 << 30},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBytesInvalid(t *testing.T) {
	for _, in := range []string{"", "MB", "-1MB", "10XB", "1..5KB"} {
		_, err := formatting.ParseBytes(in)
		assert.Error(t, err, in)
	}
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", formatting.FormatBytes(0))
	assert.Equal(t, "512 B", formatting.FormatBytes(512))
	assert.Equal(t, "1 MB", formatting.FormatBytes(1<<20))
	assert.Equal(t, "1.5 KB", formatting.FormatBytes(1536))
}
