package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvVocabSource, "/data/schemaorg.jsonld")
	t.Setenv(EnvVocabCacheDir, "/tmp/js2c")
	t.Setenv(EnvHTTPTimeout, "3s")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvOffline, "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "/data/schemaorg.jsonld", cfg.Vocabulary.Source)
	assert.Equal(t, "/tmp/js2c", cfg.Vocabulary.CacheDir)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Offline)
}

func TestApplyEnvUnset(t *testing.T) {
	for _, key := range []string{EnvVocabSource, EnvVocabCacheDir, EnvHTTPTimeout, EnvLogLevel, EnvOffline} {
		t.Setenv(key, "")
	}

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		t.Setenv(EnvHTTPTimeout, "soon")
		assert.ErrorContains(t, Default().ApplyEnv(), EnvHTTPTimeout)
	})

	t.Run("offline", func(t *testing.T) {
		t.Setenv(EnvOffline, "maybe")
		assert.ErrorContains(t, Default().ApplyEnv(), EnvOffline)
	})
}

func TestLoadDotEnv(t *testing.T) {
	// registers cleanup of the variable godotenv is about to set
	t.Setenv(EnvVocabCacheDir, "")
	require.NoError(t, os.Unsetenv(EnvVocabCacheDir))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvVocabCacheDir+"=/var/cache/js2c\n"), 0o644))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "/var/cache/js2c", os.Getenv(EnvVocabCacheDir))

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "/var/cache/js2c", cfg.Vocabulary.CacheDir)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
