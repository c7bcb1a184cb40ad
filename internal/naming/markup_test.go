package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "The name of the item.", "The name of the item."},
		{"bold", "A <b>bold</b> claim", "A bold claim"},
		{"link", `See <a href="https://schema.org">schema.org</a>.`, "See schema.org."},
		{"line break", "first<br/>", "first"},
		{"whitespace", "  padded  ", "padded"},
		{"lone angle bracket", "a < b", "a < b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripMarkup(tt.input))
		})
	}
}

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"schema:Text", "Text"},
		{"bioschemas:ComputationalTool", "ComputationalTool"},
		{"Text", "Text"},
		{"https://schema.org/Text", "https://schema.org/Text"},
		{"dangling:", "dangling:"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripPrefix(tt.input))
		})
	}
}
