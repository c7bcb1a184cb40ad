package translate

import (
	"context"
	"fmt"
	"strings"

	"jsonschema2crateo/internal/common"
	"jsonschema2crateo/internal/naming"
	"jsonschema2crateo/internal/profile"
	"jsonschema2crateo/internal/resolve"
	"jsonschema2crateo/internal/schema"
)

// helpSeparator joins distinct descriptions into one help text.
const helpSeparator = ", "

// isIdentity reports whether a property names the entity identifier, which
// is never an editable input.
func isIdentity(name string) bool {
	return name == "identifier" || name == "@id"
}

// translateProperties converts a property map into inputs, in map order.
func (r *run) translateProperties(
	ctx context.Context,
	className string,
	props schema.Ordered[schema.TypeExpr],
	required schema.StringOrArray,
) ([]profile.Input, error) {
	inputs := make([]profile.Input, 0, props.Len())

	for name, expr := range props.All() {
		if isIdentity(name) {
			continue
		}

		in, err := r.translateProperty(ctx, className, name, expr, required.Contains(name))
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, in)
	}

	return inputs, nil
}

// translateProperty converts one property into an input.
func (r *run) translateProperty(
	ctx context.Context,
	className, name string,
	expr schema.TypeExpr,
	required bool,
) (profile.Input, error) {
	descs, err := r.resolver.ResolveAt(className+"."+name, expr)
	if err != nil {
		return profile.Input{}, err
	}

	id := name
	if override, ok := r.cfg.PropertyOverrides[name]; ok {
		id = override
	}

	id, err = r.expander.Expand(ctx, id, true)
	if err != nil {
		return profile.Input{}, fmt.Errorf("property %s.%s: %w", className, name, err)
	}

	return profile.Input{
		ID:       id,
		Name:     name,
		Label:    naming.Label(name),
		Help:     helpText(descs),
		Required: required,
		Multiple: resolve.IsMultiple(expr),
		Type:     inputTypes(descs),
	}, nil
}

// inputTypes returns the distinct descriptor types without namespace
// prefix, sorted.
func inputTypes(descs []resolve.Descriptor) []string {
	types := make([]string, 0, len(descs))
	for _, d := range descs {
		types = append(types, naming.StripPrefix(d.Type))
	}

	return common.SortedUnique(types)
}

// helpText joins the distinct descriptions, or the distinct formats when no
// descriptor has a description.
func helpText(descs []resolve.Descriptor) string {
	var descriptions, formats []string

	for _, d := range descs {
		if s := naming.StripMarkup(d.Description); s != "" {
			descriptions = append(descriptions, s)
		}

		if d.Format != "" {
			formats = append(formats, d.Format)
		}
	}

	if len(descriptions) > 0 {
		return strings.Join(common.SortedUnique(descriptions), helpSeparator)
	}

	return strings.Join(common.SortedUnique(formats), helpSeparator)
}
