package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	doc, err := LoadFile("testdata/computational_tool.json")
	require.NoError(t, err)
	require.NotNil(t, doc)

	// Context keeps document order; object-valued terms contribute their @id.
	assert.Equal(t,
		[]string{"bioschemas", "bioschemastypes", "dct", "rdfs", "schema", "xsd", "@language"},
		doc.Context.Keys())

	xsd, ok := doc.Context.Get("xsd")
	require.True(t, ok)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#", xsd)

	require.Len(t, doc.Graph, 3)

	tool := doc.Graph[0]
	assert.Equal(t, "bioschemas:ComputationalTool", tool.ID)
	assert.True(t, tool.IsClass())
	assert.Equal(t, "ComputationalTool", tool.Label.String())
	assert.Equal(t, []string{"schema:SoftwareApplication"}, tool.SubClassOf.IDs())
	require.NotNil(t, tool.Validation)

	v := tool.Validation
	assert.Equal(t, []string{"name", "url", "identifier", "author"}, v.Properties.Keys())
	assert.True(t, v.Required.Contains("url"))
	assert.False(t, v.Required.Contains("author"))
	assert.Equal(t, []string{"organization", "person"}, v.Definitions.Keys())

	org, ok := v.Definitions.Get("organization")
	require.True(t, ok)
	assert.Equal(t, "schema:Organization", org.Type)
	assert.Equal(t, []string{"@id", "name"}, org.Members().Keys())

	person, ok := v.Definitions.Get("person")
	require.True(t, ok)
	assert.Equal(t, []string{"givenName"}, person.Members().Keys())
	assert.Equal(t, []string{"Thing"}, person.SuperClasses())

	thing := doc.Graph[1]
	assert.Equal(t, "Thing", thing.Label.String())
	assert.Nil(t, thing.Validation)

	assert.False(t, doc.Graph[2].IsClass())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"@graph": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema JSON")
}

func TestLookupLabel(t *testing.T) {
	doc, err := LoadFile("testdata/computational_tool.json")
	require.NoError(t, err)

	id, ok := doc.LookupLabel("Thing")
	assert.True(t, ok)
	assert.Equal(t, "schema:Thing", id)

	_, ok = doc.LookupLabel("Nothing")
	assert.False(t, ok)

	var nilDoc *Document
	_, ok = nilDoc.LookupLabel("Thing")
	assert.False(t, ok)
}

func TestContextShapes(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected []string
	}{
		{"object", `{"schema": "https://schema.org/"}`, []string{"schema"}},
		{"array", `["https://example.org/ctx.jsonld", {"a": "https://a/"}, {"b": "https://b/"}]`, []string{"a", "b"}},
		{"remote", `"https://example.org/ctx.jsonld"`, nil},
		{"null", `null`, nil},
		{"non-string term ignored", `{"a": "https://a/", "n": 3, "o": {"@container": "@list"}}`, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Context
			require.NoError(t, json.Unmarshal([]byte(tt.json), &c))
			assert.Equal(t, tt.expected, c.Keys())
		})
	}
}

func TestStringOrArray(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected StringOrArray
	}{
		{"single string", `"Person"`, StringOrArray{"Person"}},
		{"empty string", `""`, StringOrArray{}},
		{"array", `["Person", "Organization"]`, StringOrArray{"Person", "Organization"}},
		{"null", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringOrArray
			require.NoError(t, json.Unmarshal([]byte(tt.json), &s))
			assert.Equal(t, tt.expected, s)
		})
	}

	var s StringOrArray
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestStringOrArrayMarshal(t *testing.T) {
	out, err := json.Marshal(StringOrArray{"one"})
	require.NoError(t, err)
	assert.JSONEq(t, `"one"`, string(out))

	out, err = json.Marshal(StringOrArray{"a", "b"})
	require.NoError(t, err)
	assert.JSONEq(t, `["a", "b"]`, string(out))

	out, err = json.Marshal(StringOrArray(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(out))
}

func TestIDRefs(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected []string
	}{
		{"single object", `{"@id": "schema:Thing"}`, []string{"schema:Thing"}},
		{"array", `[{"@id": "schema:Thing"}, {"@id": "schema:CreativeWork"}]`, []string{"schema:Thing", "schema:CreativeWork"}},
		{"plain string", `"schema:Thing"`, []string{"schema:Thing"}},
		{"empty ids dropped", `[{"@id": ""}, "schema:Thing"]`, []string{"schema:Thing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r IDRefs
			require.NoError(t, json.Unmarshal([]byte(tt.json), &r))
			assert.Equal(t, tt.expected, r.IDs())
		})
	}
}

func TestLangString(t *testing.T) {
	tests := []struct {
		json     string
		expected string
	}{
		{`"Tool"`, "Tool"},
		{`{"@value": "Tool", "@language": "en"}`, "Tool"},
		{`[{"@value": "Tool"}, "Werkzeug"]`, "Tool"},
		{`null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.json, func(t *testing.T) {
			var l LangString
			require.NoError(t, json.Unmarshal([]byte(tt.json), &l))
			assert.Equal(t, tt.expected, l.String())
		})
	}
}
