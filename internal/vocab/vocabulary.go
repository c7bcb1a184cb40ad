package vocab

import (
	"encoding/json"
	"fmt"
	"strings"

	"jsonschema2crateo/internal/schema"
)

// Vocabulary is a read-only set of term URIs.
type Vocabulary struct {
	terms map[string]struct{}
}

// New builds a Vocabulary from absolute term URIs.
func New(uris ...string) *Vocabulary {
	v := &Vocabulary{terms: make(map[string]struct{}, len(uris))}
	for _, u := range uris {
		v.terms[termKey(u)] = struct{}{}
	}

	return v
}

// Parse reads a JSON-LD document and records the @id of every @graph entry.
// Compact ids ("schema:Person") are expanded with the document's own @context.
func Parse(data []byte) (*Vocabulary, error) {
	var doc struct {
		Context schema.Context `json:"@context"`
		Graph   []struct {
			ID string `json:"@id"`
		} `json:"@graph"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON-LD: %w", err)
	}

	v := &Vocabulary{terms: make(map[string]struct{}, len(doc.Graph))}

	for _, node := range doc.Graph {
		if node.ID == "" {
			continue
		}

		v.terms[termKey(expandID(doc.Context, node.ID))] = struct{}{}
	}

	return v, nil
}

// Contains reports whether uri names a term of the vocabulary.
// http and https forms of the same URI are equivalent.
func (v *Vocabulary) Contains(uri string) bool {
	if v == nil {
		return false
	}

	_, ok := v.terms[termKey(uri)]

	return ok
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}

	return len(v.terms)
}

func expandID(ctx schema.Context, id string) string {
	if strings.Contains(id, "://") {
		return id
	}

	prefix, suffix, found := strings.Cut(id, ":")
	if !found {
		return id
	}

	if base, ok := ctx.Get(prefix); ok {
		return base + suffix
	}

	return id
}

// termKey drops the URI scheme so http://schema.org/X matches https://schema.org/X.
func termKey(uri string) string {
	if _, rest, found := strings.Cut(uri, "://"); found {
		return rest
	}

	return uri
}

// SameNamespace reports whether two namespace URIs differ at most in their
// http/https scheme.
func SameNamespace(a, b string) bool {
	return a != "" && termKey(a) == termKey(b)
}
