// Package main provides the CLI entrypoint for jsonschema2crateo.
//
// jsonschema2crateo reads a BioSchemas-style JSON Schema document embedded
// in a JSON-LD @graph and writes the equivalent Crate-O profile:
//   - Loads the document from a path or URI
//   - Expands identifiers against its @context, its own labels, the
//     schema.org vocabulary and, unless offline, HTTP existence probes
//   - Translates the root class, its properties and its definitions
//   - Checks the result against the profile meta-schema and writes it
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"jsonschema2crateo/internal/config"
	"jsonschema2crateo/internal/expand"
	"jsonschema2crateo/internal/profile"
	"jsonschema2crateo/internal/schema"
	"jsonschema2crateo/internal/translate"
	"jsonschema2crateo/internal/vocab"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// options are the command-line flags.
type options struct {
	in               string
	out              string
	configPath       string
	version          string
	vocabSource      string
	logLevel         string
	timeout          time.Duration
	offline          bool
	strict           bool
	allowMissingRoot bool
	noValidate       bool
}

func parseFlags(args []string, stderr io.Writer) (*options, *flag.FlagSet, error) {
	var o options

	fs := flag.NewFlagSet("jsonschema2crateo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "", "input JSON Schema document (path or URI)")
	fs.StringVar(&o.out, "out", "-", "output profile path, - for stdout")
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.version, "version", "", "profile version written to metadata")
	fs.StringVar(&o.vocabSource, "vocab", "", "schema.org vocabulary (path or URI)")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.DurationVar(&o.timeout, "timeout", 0, "HTTP timeout for fetches and probes")
	fs.BoolVar(&o.offline, "offline", false, "no network access")
	fs.BoolVar(&o.strict, "strict", false, "fail on any warning")
	fs.BoolVar(&o.allowMissingRoot, "allow-missing-root", false, "write a profile even when no node has a $validation block")
	fs.BoolVar(&o.noValidate, "no-validate", false, "skip the profile meta-schema check")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if o.in == "" && fs.NArg() > 0 {
		o.in = fs.Arg(0)
	}

	if o.in == "" {
		return nil, nil, errors.New("an input document is required (-in)")
	}

	return &o, fs, nil
}

// loadConfig layers defaults, the config file, the environment and the
// flags that were set explicitly.
func loadConfig(o *options, fs *flag.FlagSet) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg := config.Default()

	if o.configPath != "" {
		var err error

		cfg, err = config.LoadFile(o.configPath)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "version":
			cfg.Version = o.version
		case "vocab":
			cfg.Vocabulary.Source = o.vocabSource
		case "log-level":
			cfg.LogLevel = o.logLevel
		case "timeout":
			cfg.HTTP.Timeout = o.timeout
		case "offline":
			cfg.Offline = o.offline
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, fs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(o, fs)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	client := &http.Client{Timeout: cfg.HTTP.Timeout}

	doc, err := schema.Load(ctx, o.in, client)
	if err != nil {
		return err
	}

	vocabulary := loadVocabulary(ctx, cfg, client, logger)

	var prober expand.Prober
	if !cfg.Offline {
		prober = &expand.HTTPProber{Client: client, Logger: logger}
	}

	tr := translate.New(translate.Options{
		Config:           cfg,
		Vocabulary:       vocabulary,
		Prober:           prober,
		Logger:           logger,
		Strict:           o.strict,
		AllowMissingRoot: o.allowMissingRoot,
	})

	res, err := tr.Translate(ctx, doc)
	if res != nil {
		res.Diagnostics.Log(ctx, logger)
	}

	if err != nil {
		return fmt.Errorf("translation of %s failed: %w", o.in, err)
	}

	if !o.noValidate {
		if err := profile.Validate(res.Profile); err != nil {
			return err
		}
	}

	if o.out == "-" {
		return profile.Write(stdout, res.Profile)
	}

	if err := profile.WriteFile(res.Profile, o.out); err != nil {
		return err
	}

	logger.InfoContext(ctx, "profile written", slog.String("path", o.out))

	return nil
}

// loadVocabulary returns nil when the vocabulary is unavailable; the
// translation then runs without membership checks.
func loadVocabulary(ctx context.Context, cfg *config.Config, client *http.Client, logger *slog.Logger) *vocab.Vocabulary {
	source := cfg.Vocabulary.Source
	if source == "" || (cfg.Offline && schema.IsRemote(source)) {
		return nil
	}

	loader, err := vocab.NewLoader(vocab.LoaderOptions{
		CacheDir: cfg.Vocabulary.CacheDir,
		Client:   client,
		Logger:   logger,
	})
	if err != nil {
		logger.WarnContext(ctx, "vocabulary loader unavailable", slog.Any("error", err))
		return nil
	}

	v, err := loader.Load(ctx, source)
	if err != nil {
		logger.WarnContext(ctx, "vocabulary unavailable", slog.String("source", source), slog.Any("error", err))
		return nil
	}

	logger.DebugContext(ctx, "vocabulary loaded", slog.String("source", source), slog.Int("terms", v.Len()))

	return v
}
