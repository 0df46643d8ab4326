package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedMIME(t *testing.T) {
	tests := []struct {
		mimeType string
		want     bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/gif", true},
		{"image/webp", true},
		{"application/pdf", true},
		{"IMAGE/PNG", true},
		{"image/png; charset=binary", true},
		{"text/plain", false},
		{"application/zip", false},
		{"image/svg+xml", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedMIME(tt.mimeType))
		})
	}
}

func TestGenerateFilenamePreservesExtension(t *testing.T) {
	name := GenerateFilename("슬라이드.PDF")
	assert.True(t, strings.HasSuffix(name, ".pdf"), "got %q", name)
	assert.NotContains(t, name, "슬라이드")
}

func TestGenerateFilenameUnique(t *testing.T) {
	a := GenerateFilename("a.png")
	b := GenerateFilename("a.png")
	assert.NotEqual(t, a, b)
}
