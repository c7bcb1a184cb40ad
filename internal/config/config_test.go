package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0", cfg.Version)
	assert.Equal(t, "schema", cfg.DescriptionPrefix)
	assert.Equal(t, 10*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "https://schema.org/", cfg.Vocabulary.Namespace)
	assert.Equal(t, map[string]string{"identifier": "@id"}, cfg.PropertyOverrides)
	assert.Equal(t, "Text", cfg.TypeNames["string"])
	assert.Equal(t, "override", cfg.DatasetClass.Definition)
	assert.NotEmpty(t, cfg.DatasetClass.Inputs)
	assert.Contains(t, cfg.EnabledClasses, "Dataset")
	assert.NotEmpty(t, cfg.InputGroups)
	require.NoError(t, cfg.Validate())
}

func TestDefaultIsFreshCopy(t *testing.T) {
	a := Default()
	a.TypeNames["string"] = "TextArea"

	assert.Equal(t, "Text", Default().TypeNames["string"])
}

func TestParseOverlay(t *testing.T) {
	cfg, err := Parse([]byte(`
version: 2.1.0
prefixOverrides:
  bsc: https://bioschemas.org/profiles/
typeNames:
  string: TextArea
enabledClasses: [Dataset, SoftwareApplication]
http:
  timeout: 250ms
`))
	require.NoError(t, err)

	assert.Equal(t, "2.1.0", cfg.Version)
	assert.Equal(t, "https://bioschemas.org/profiles/", cfg.PrefixOverrides["bsc"])
	assert.Equal(t, 250*time.Millisecond, cfg.HTTP.Timeout)

	// maps merge, lists replace
	assert.Equal(t, "TextArea", cfg.TypeNames["string"])
	assert.Equal(t, "Integer", cfg.TypeNames["integer"])
	assert.Equal(t, []string{"Dataset", "SoftwareApplication"}, cfg.EnabledClasses)

	// untouched sections keep their defaults
	assert.Equal(t, "schema", cfg.DescriptionPrefix)
	assert.NotEmpty(t, cfg.DatasetClass.Inputs)
}

func TestParseBlankedValues(t *testing.T) {
	cfg, err := Parse([]byte(`
version: ""
descriptionPrefix: ""
`))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0", cfg.Version)
	assert.Equal(t, "schema", cfg.DescriptionPrefix)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("http: [not, a, map]"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("offline: true\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Offline)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLevel(t *testing.T) {
	cfg := Default()

	cfg.LogLevel = "debug"
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	cfg.LogLevel = "loud"
	_, err = cfg.Level()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing vocabulary source", func(c *Config) { c.Vocabulary.Source = "" }},
		{"negative timeout", func(c *Config) { c.HTTP.Timeout = -time.Second }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
		{"empty type name", func(c *Config) { c.TypeNames["string"] = " " }},
		{"empty enabled class", func(c *Config) { c.EnabledClasses = []string{""} }},
		{"unnamed input group", func(c *Config) { c.InputGroups[0].Name = "" }},
		{"dataset input without id", func(c *Config) { c.DatasetClass.Inputs[0].ID = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateOfflineWithoutSource(t *testing.T) {
	cfg := Default()
	cfg.Vocabulary.Source = ""
	cfg.Offline = true

	assert.NoError(t, cfg.Validate())
}
