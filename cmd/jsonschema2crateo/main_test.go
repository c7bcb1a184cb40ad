package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonschema2crateo/internal/config"
	"jsonschema2crateo/internal/profile"
	"jsonschema2crateo/internal/translate"
)

// isolateEnv clears the JS2C_* variables for the duration of a test.
func isolateEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		config.EnvVocabSource, config.EnvVocabCacheDir, config.EnvHTTPTimeout,
		config.EnvLogLevel, config.EnvOffline,
	} {
		t.Setenv(key, "")
	}
}

func TestRunWritesProfile(t *testing.T) {
	isolateEnv(t)

	out := filepath.Join(t.TempDir(), "profile.json")

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{
		"-offline",
		"-vocab", "testdata/schemaorg.jsonld",
		"-version", "2.0.0",
		"-out", out,
		"testdata/computational_tool.json",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var p profile.Profile
	require.NoError(t, json.Unmarshal(data, &p))

	assert.Equal(t, "2.0.0", p.Metadata.Version)
	assert.Equal(t, "ComputationalTool", p.Metadata.Name)
	assert.Equal(t, "ComputationalTool", p.EnabledClasses[0])
	require.Contains(t, p.Classes, "ComputationalTool")

	var ids []string
	for _, in := range p.Classes["ComputationalTool"].Inputs {
		ids = append(ids, in.ID)
	}

	assert.Equal(t, []string{
		"https://schema.org/name",
		"https://schema.org/url",
		"https://schema.org/author",
	}, ids)
}

func TestRunStdout(t *testing.T) {
	isolateEnv(t)

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-offline", "-in", "testdata/computational_tool.json"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.Contains(t, stdout.String(), "\"rootDatasets\": {")
	require.NoError(t, profile.ValidateJSON(stdout.Bytes()))
}

func TestRunEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvOffline, "true")
	t.Setenv(config.EnvLogLevel, "debug")

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"testdata/computational_tool.json"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "level=DEBUG")
}

func TestRunConfigFile(t *testing.T) {
	isolateEnv(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("version: 9.9.9\nenabledClasses: [Dataset]\n"), 0o644))

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{
		"-offline", "-config", cfgPath, "testdata/computational_tool.json",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.Contains(t, stdout.String(), `"version": "9.9.9"`)
	assert.Contains(t, stdout.String(), "\"enabledClasses\": [\n\t\t\"ComputationalTool\",\n\t\t\"Dataset\"\n\t]")
}

func TestRunMissingRoot(t *testing.T) {
	isolateEnv(t)

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-offline", "testdata/no_root.json"}, &stdout, &stderr)
	require.ErrorIs(t, err, translate.ErrMissingRootDataset)
	assert.Empty(t, stdout.String())

	stdout.Reset()

	err = run(context.Background(), []string{"-offline", "-allow-missing-root", "testdata/no_root.json"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"Thing"`)
	assert.Contains(t, stderr.String(), "missing_root_dataset")

	err = run(context.Background(), []string{
		"-offline", "-allow-missing-root", "-strict", "testdata/no_root.json",
	}, &stdout, &stderr)
	require.ErrorIs(t, err, translate.ErrStrictMode)
}

func TestRunErrors(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"-offline"}},
		{"missing input file", []string{"-offline", "testdata/missing.json"}},
		{"bad log level", []string{"-offline", "-log-level", "chatty", "testdata/computational_tool.json"}},
		{"missing config", []string{"-config", "testdata/missing.yaml", "testdata/computational_tool.json"}},
		{"unknown flag", []string{"-frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Error(t, run(context.Background(), tt.args, &stdout, &stderr))
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-help"}, &stdout, &stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "-allow-missing-root")
}
