package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal serializes a profile as tab-indented JSON with a trailing newline.
func Marshal(p *Profile) ([]byte, error) {
	p.Normalize()

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}

	return buf.Bytes(), nil
}

// Write serializes a profile to w.
func Write(w io.Writer, p *Profile) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	return nil
}

// WriteFile writes a profile to the given path.
func WriteFile(p *Profile, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write profile file %s: %w", path, err)
	}

	return nil
}
