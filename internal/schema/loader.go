package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// LoadFile loads and parses a schema document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Load reads a schema document from a local path or an absolute http(s) URI.
// A nil client means http.DefaultClient.
func Load(ctx context.Context, source string, client *http.Client) (*Document, error) {
	if !IsRemote(source) {
		return LoadFile(source)
	}

	data, err := Fetch(ctx, client, source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schema %s: %w", source, err)
	}

	return Parse(data)
}

// Parse parses JSON data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	return &doc, nil
}

// IsRemote reports whether source is an http(s) URI rather than a path.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Fetch performs a GET request and returns the body of a 200 response.
func Fetch(ctx context.Context, client *http.Client, uri string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/ld+json, application/json;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
