package vocab

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"jsonschema2crateo/internal/schema"
)

// DefaultMemoSize is the number of parsed vocabularies kept per Loader.
const DefaultMemoSize = 8

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	// CacheDir keeps downloaded vocabularies on disk. Empty disables it.
	CacheDir string
	// Client performs downloads. Nil means http.DefaultClient.
	Client *http.Client
	// MemoSize bounds the in-process cache. Zero means DefaultMemoSize.
	MemoSize int
	Logger   *slog.Logger
}

// Loader fetches and parses vocabularies, memoizing them by source.
// It is safe for concurrent use.
type Loader struct {
	cacheDir string
	client   *http.Client
	logger   *slog.Logger
	memo     *lru.Cache[string, *Vocabulary]
}

// NewLoader creates a Loader.
func NewLoader(opts LoaderOptions) (*Loader, error) {
	size := opts.MemoSize
	if size <= 0 {
		size = DefaultMemoSize
	}

	memo, err := lru.New[string, *Vocabulary](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create vocabulary memo: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Loader{
		cacheDir: strings.TrimSpace(opts.CacheDir),
		client:   opts.Client,
		logger:   logger,
		memo:     memo,
	}, nil
}

// Load returns the vocabulary at source, a local path or an http(s) URI.
// Remote sources are read from the cache directory when present there and
// written to it after a successful download.
func (l *Loader) Load(ctx context.Context, source string) (*Vocabulary, error) {
	if v, ok := l.memo.Get(source); ok {
		return v, nil
	}

	data, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}

	v, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %w", source, err)
	}

	l.logger.Debug("vocabulary loaded", slog.String("source", source), slog.Int("terms", v.Len()))
	l.memo.Add(source, v)

	return v, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !schema.IsRemote(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read vocabulary file %s: %w", source, err)
		}

		return data, nil
	}

	cached := l.cachePath(source)
	if cached != "" {
		if data, err := os.ReadFile(cached); err == nil {
			l.logger.Debug("vocabulary cache hit", slog.String("path", cached))
			return data, nil
		}
	}

	data, err := schema.Fetch(ctx, l.client, source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vocabulary %s: %w", source, err)
	}

	if cached != "" {
		if err := writeAtomic(cached, data); err != nil {
			// a cache write failure only costs a later re-download
			l.logger.Warn("vocabulary cache write failed", slog.String("path", cached), slog.Any("error", err))
		}
	}

	return data, nil
}

// cachePath names the cache file after the SHA-256 of the source URI.
func (l *Loader) cachePath(source string) string {
	if l.cacheDir == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(source))

	return filepath.Join(l.cacheDir, hex.EncodeToString(sum[:])+".jsonld")
}

func writeAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".vocab-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}
