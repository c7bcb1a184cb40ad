package vocab

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data, err := os.ReadFile("testdata/schemaorg.jsonld")
	require.NoError(t, err)

	v, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 6, v.Len())

	tests := []struct {
		uri      string
		expected bool
	}{
		{"https://schema.org/Person", true},
		{"http://schema.org/Person", true},
		{"https://schema.org/author", true},
		{"https://schema.org/name", true},
		{"https://schema.org/NotAThing", false},
		{"schema:Person", false},
		{"https://bioschemas.org/Person", false},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Contains(tt.uri))
		})
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte(`{"@graph": {}}`))
	assert.Error(t, err)
}

func TestNilVocabulary(t *testing.T) {
	var v *Vocabulary
	assert.False(t, v.Contains("https://schema.org/Person"))
	assert.Equal(t, 0, v.Len())
}

func TestNew(t *testing.T) {
	v := New("https://schema.org/Person")
	assert.True(t, v.Contains("http://schema.org/Person"))
	assert.False(t, v.Contains("https://schema.org/Organization"))
}

func TestSameNamespace(t *testing.T) {
	assert.True(t, SameNamespace("https://schema.org/", "http://schema.org/"))
	assert.True(t, SameNamespace("https://schema.org/", "https://schema.org/"))
	assert.False(t, SameNamespace("https://schema.org/", "https://bioschemas.org/"))
	assert.False(t, SameNamespace("", ""))
}
