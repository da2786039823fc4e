package books

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"Belajar Laravel untuk Pemula", "Belajar Laravel untuk Pemula"},
		{"C++: The Complete Guide?", "C++ The Complete Guide"},
		{"a/b\\c:d*e?f\"g<h>i|j", "abcdefghij"},
		{"  spaced   out  ", "spaced out"},
		{"///", "book"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, sanitizeFilename(tt.input))
	}
}

func TestDownloadFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Dongeng Nusantara.pdf", downloadFilename("Dongeng Nusantara"))
}
