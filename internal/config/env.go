package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvVocabSource   = "JS2C_VOCAB_SOURCE"
	EnvVocabCacheDir = "JS2C_VOCAB_CACHE_DIR"
	EnvHTTPTimeout   = "JS2C_HTTP_TIMEOUT"
	EnvLogLevel      = "JS2C_LOG_LEVEL"
	EnvOffline       = "JS2C_OFFLINE"
)

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}

	return nil
}

// ApplyEnv overrides settings from JS2C_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := env(EnvVocabSource); v != "" {
		c.Vocabulary.Source = v
	}

	if v := env(EnvVocabCacheDir); v != "" {
		c.Vocabulary.CacheDir = v
	}

	if v := env(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	if v := env(EnvHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHTTPTimeout, err)
		}

		c.HTTP.Timeout = d
	}

	if v := env(EnvOffline); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvOffline, err)
		}

		c.Offline = b
	}

	return nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
