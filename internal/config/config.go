package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"jsonschema2crateo/internal/profile"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the complete translator configuration.
type Config struct {
	// Version is written to the profile metadata.
	Version string `yaml:"version"`
	// DescriptionPrefix names the schema-description namespace.
	DescriptionPrefix string     `yaml:"descriptionPrefix"`
	LogLevel          string     `yaml:"logLevel"`
	Vocabulary        Vocabulary `yaml:"vocabulary"`
	HTTP              HTTP       `yaml:"http"`
	// Offline disables vocabulary fetches and namespace probes.
	Offline bool `yaml:"offline"`

	PrefixOverrides   map[string]string `yaml:"prefixOverrides"`
	PropertyOverrides map[string]string `yaml:"propertyOverrides"`
	TypeNames         map[string]string `yaml:"typeNames"`
	// KnownTypes are input types accepted without a matching class.
	KnownTypes []string `yaml:"knownTypes"`

	DatasetClass   profile.Class        `yaml:"datasetClass"`
	EnabledClasses []string             `yaml:"enabledClasses"`
	InputGroups    []profile.InputGroup `yaml:"inputGroups"`
}

// Vocabulary locates the external vocabulary document.
type Vocabulary struct {
	// Source is a path or an absolute URI.
	Source string `yaml:"source"`
	// Namespace is the base URI answered from the vocabulary.
	Namespace string `yaml:"namespace"`
	// CacheDir stores fetched documents. Empty disables the disk cache.
	CacheDir string `yaml:"cacheDir"`
}

// HTTP configures the client used for fetches and probes.
type HTTP struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}

	applyDefaults(&cfg)

	return &cfg
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse reads YAML over the defaults. Maps are merged key by key, lists and
// scalars replace the default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills in values that a config file may have blanked.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "0.0.0"
	}

	if cfg.DescriptionPrefix == "" {
		cfg.DescriptionPrefix = "schema"
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if cfg.DatasetClass.Definition == "" {
		cfg.DatasetClass.Definition = profile.DefinitionOverride
	}

	if cfg.PrefixOverrides == nil {
		cfg.PrefixOverrides = map[string]string{}
	}

	if cfg.PropertyOverrides == nil {
		cfg.PropertyOverrides = map[string]string{}
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// Validate checks the config for values the translator cannot use.
func (c *Config) Validate() error {
	var errs []error

	if c.Vocabulary.Source == "" && !c.Offline {
		errs = append(errs, errors.New("vocabulary.source is required unless offline"))
	}

	if c.HTTP.Timeout < 0 {
		errs = append(errs, fmt.Errorf("http.timeout must not be negative, got %s", c.HTTP.Timeout))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	for k, v := range c.TypeNames {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("typeNames.%s is empty", k))
		}
	}

	for i, name := range c.EnabledClasses {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Errorf("enabledClasses[%d] is empty", i))
		}
	}

	for i, g := range c.InputGroups {
		if strings.TrimSpace(g.Name) == "" {
			errs = append(errs, fmt.Errorf("inputGroups[%d].name is empty", i))
		}
	}

	for i, in := range c.DatasetClass.Inputs {
		if in.ID == "" || in.Name == "" {
			errs = append(errs, fmt.Errorf("datasetClass.inputs[%d] needs id and name", i))
		}
	}

	return errors.Join(errs...)
}
