package expand

import (
	"context"
	"log/slog"
	"strings"

	"jsonschema2crateo/internal/schema"
	"jsonschema2crateo/internal/vocab"
)

// DefaultDescriptionPrefix is the prefix of the schema-description namespace.
const DefaultDescriptionPrefix = "schema"

// Lookup finds the @id of a graph node by its label.
type Lookup interface {
	LookupLabel(label string) (string, bool)
}

// Options configures an Expander.
type Options struct {
	// Context maps prefixes to namespace URIs, in the order they are tried.
	Context schema.Context
	// Lookup resolves bare names by label. It may be nil.
	Lookup Lookup
	// PrefixOverrides replace the @context URI of a prefix.
	PrefixOverrides map[string]string
	// DescriptionPrefix names the namespace whose terms stay bare names
	// unless expansion is forced. Empty means DefaultDescriptionPrefix.
	DescriptionPrefix string
	// Vocabulary answers membership for VocabularyNamespace candidates.
	Vocabulary *vocab.Vocabulary
	// VocabularyNamespace is never probed over HTTP.
	VocabularyNamespace string
	// Prober checks other candidates. Nil disables network probes.
	Prober Prober
	Logger *slog.Logger
}

type cacheKey struct {
	id    string
	force bool
}

// Expander resolves identifiers and caches every answer. One Expander serves
// one translation run; it is not safe for concurrent use.
type Expander struct {
	opts       Options
	logger     *slog.Logger
	cache      map[cacheKey]string
	searched   map[string]string
	unresolved []string
}

// New creates an Expander with an empty cache.
func New(opts Options) *Expander {
	if opts.DescriptionPrefix == "" {
		opts.DescriptionPrefix = DefaultDescriptionPrefix
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Expander{
		opts:     opts,
		logger:   logger,
		cache:    make(map[cacheKey]string),
		searched: make(map[string]string),
	}
}

// Expand resolves id to a URI. With force set, identifiers in the
// description namespace are expanded to full URIs instead of bare names.
func (x *Expander) Expand(ctx context.Context, id string, force bool) (string, error) {
	if id == "" || IsAbsolute(id) || isKeyword(id) {
		return id, nil
	}

	key := cacheKey{id: id, force: force}
	if v, ok := x.cache[key]; ok {
		return v, nil
	}

	cur := id
	if !strings.Contains(cur, ":") && x.opts.Lookup != nil {
		if ref, ok := x.opts.Lookup.LookupLabel(cur); ok {
			cur = ref
		}
	}

	var (
		out string
		err error
	)

	switch prefix, suffix, ok := splitCURIE(cur); {
	case IsAbsolute(cur):
		out = cur
	case ok:
		out, err = x.expandCURIE(id, prefix, suffix, force)
		if err != nil {
			return "", err
		}
	default:
		// force only matters for CURIEs
		if v, ok := x.searched[cur]; ok {
			out = v
			break
		}

		out, err = x.search(ctx, cur)
		if err != nil {
			return "", err
		}

		x.searched[cur] = out
	}

	x.cache[key] = out

	return out, nil
}

// ExpandAll expands every id. The result is never nil.
func (x *Expander) ExpandAll(ctx context.Context, ids []string, force bool) ([]string, error) {
	out := make([]string, 0, len(ids))

	for _, id := range ids {
		v, err := x.Expand(ctx, id, force)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// Unresolved returns the bare names that matched no namespace, in the order
// they were first seen.
func (x *Expander) Unresolved() []string {
	return x.unresolved
}

func (x *Expander) expandCURIE(id, prefix, suffix string, force bool) (string, error) {
	if base, ok := x.opts.PrefixOverrides[prefix]; ok {
		return base + suffix, nil
	}

	if prefix == x.opts.DescriptionPrefix && !force {
		return suffix, nil
	}

	base, ok := x.opts.Context.Get(prefix)
	if !ok {
		return "", &UnknownPrefixError{Identifier: id, Prefix: prefix}
	}

	return base + suffix, nil
}

// search tries name under every namespace of the context.
func (x *Expander) search(ctx context.Context, name string) (string, error) {
	for _, prefix := range x.opts.Context.Keys() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		base := x.baseFor(prefix)

		// Hash namespaces answer 200 for any fragment.
		if isKeyword(prefix) || !strings.Contains(base, "://") || strings.HasSuffix(base, "#") {
			continue
		}

		candidate := base + name

		if vocab.SameNamespace(base, x.opts.VocabularyNamespace) {
			if x.opts.Vocabulary.Contains(candidate) {
				return candidate, nil
			}

			continue
		}

		if x.opts.Prober != nil && x.opts.Prober.Exists(ctx, candidate) {
			x.logger.DebugContext(ctx, "identifier expanded by probe",
				slog.String("identifier", name), slog.String("uri", candidate))

			return candidate, nil
		}
	}

	x.logger.DebugContext(ctx, "identifier left unexpanded", slog.String("identifier", name))
	x.unresolved = append(x.unresolved, name)

	return name, nil
}

func (x *Expander) baseFor(prefix string) string {
	if base, ok := x.opts.PrefixOverrides[prefix]; ok {
		return base
	}

	base, _ := x.opts.Context.Get(prefix)

	return base
}

// IsAbsolute reports whether id is already a full URI.
func IsAbsolute(id string) bool {
	return strings.Contains(id, "://") || strings.HasPrefix(id, "urn:")
}

func isKeyword(id string) bool {
	return strings.HasPrefix(id, "@")
}

// splitCURIE splits "prefix:suffix".
func splitCURIE(id string) (prefix, suffix string, ok bool) {
	prefix, suffix, found := strings.Cut(id, ":")
	if !found || prefix == "" || suffix == "" {
		return "", "", false
	}

	return prefix, suffix, true
}
