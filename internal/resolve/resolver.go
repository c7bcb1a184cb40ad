package resolve

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"jsonschema2crateo/internal/naming"
	"jsonschema2crateo/internal/schema"
)

// Descriptor is one resolved type of a property.
type Descriptor struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format,omitempty"`
}

// DefaultTypeNames maps JSON Schema primitive keywords to profile type names.
func DefaultTypeNames() map[string]string {
	return map[string]string{
		"string":  "Text",
		"integer": "Integer",
		"number":  "Number",
		"boolean": "Boolean",
	}
}

// Resolver resolves type expressions with a primitive type mapping.
type Resolver struct {
	typeNames map[string]string
}

// New creates a Resolver. A nil mapping means DefaultTypeNames.
func New(typeNames map[string]string) *Resolver {
	if typeNames == nil {
		typeNames = DefaultTypeNames()
	}

	return &Resolver{typeNames: maps.Clone(typeNames)}
}

// TypeName maps a primitive keyword. Unmapped keywords are returned as is.
func (r *Resolver) TypeName(primitive string) string {
	if name, ok := r.typeNames[primitive]; ok {
		return name
	}

	return primitive
}

// MappedTypes returns the sorted profile type names the mapping can produce.
func (r *Resolver) MappedTypes() []string {
	out := slices.Collect(maps.Values(r.typeNames))
	slices.Sort(out)

	return slices.Compact(out)
}

// Resolve resolves every expression in order and concatenates the results.
// Descriptors are not deduplicated.
func (r *Resolver) Resolve(exprs ...schema.TypeExpr) ([]Descriptor, error) {
	return r.ResolveAt("", exprs...)
}

// ResolveAt is Resolve with a path prefix used in errors.
func (r *Resolver) ResolveAt(path string, exprs ...schema.TypeExpr) ([]Descriptor, error) {
	out := make([]Descriptor, 0, len(exprs))

	for i, e := range exprs {
		p := path
		if len(exprs) > 1 {
			p = pathJoin(path, fmt.Sprintf("[%d]", i))
		}

		if err := r.walk(p, e, &out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// walk appends the descriptors of e. A reference keeps the expression's
// description and an array hands its description to items that lack one, so
// a description set on the property reaches the resolved types.
func (r *Resolver) walk(path string, e schema.TypeExpr, out *[]Descriptor) error {
	switch e.Kind {
	case schema.KindReference:
		name, err := RefName(e.Ref)
		if err != nil {
			return &RefError{Path: pathOrRoot(path), Ref: e.Ref, Err: err}
		}

		*out = append(*out, Descriptor{Type: naming.Capitalize(name), Description: e.Description})

	case schema.KindArray:
		for i, item := range e.Items {
			if item.Description == "" {
				item.Description = e.Description
			}

			p := pathJoin(path, "items")
			if len(e.Items) > 1 {
				p = pathJoin(p, fmt.Sprintf("[%d]", i))
			}

			if err := r.walk(p, item, out); err != nil {
				return err
			}
		}

	case schema.KindPrimitive:
		*out = append(*out, Descriptor{
			Type:        r.TypeName(e.Name),
			Description: e.Description,
			Format:      e.Format,
		})

	case schema.KindAlternatives:
		desc := naming.StripMarkup(e.Description)

		for i, alt := range e.Alternatives {
			if desc != "" {
				alt.Description = desc
			}

			if err := r.walk(pathJoin(path, fmt.Sprintf("[%d]", i)), alt, out); err != nil {
				return err
			}
		}

	default:
		return &UnrecognizedTypeExpressionError{Path: pathOrRoot(path), Raw: e.Raw}
	}

	return nil
}

// RefName extracts the definition name from a $ref such as
// "#/definitions/organization": the last segment of the fragment.
func RefName(ref string) (string, error) {
	_, frag, _ := strings.Cut(ref, "#")
	if frag == "" {
		frag = ref
	}

	name := frag[strings.LastIndex(frag, "/")+1:]
	if name == "" {
		return "", errors.New("empty definition name")
	}

	// JSON Pointer escapes
	name = strings.ReplaceAll(name, "~1", "/")
	name = strings.ReplaceAll(name, "~0", "~")

	return name, nil
}

func pathJoin(prefix, next string) string {
	if prefix == "" {
		return next
	}

	if strings.HasPrefix(next, "[") {
		return prefix + next
	}

	return prefix + "." + next
}

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}

	return path
}
