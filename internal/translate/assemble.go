package translate

import (
	"fmt"
	"maps"
	"slices"

	"jsonschema2crateo/internal/diagnostic"
	"jsonschema2crateo/internal/naming"
	"jsonschema2crateo/internal/profile"
)

// maxSuggestions bounds the suggestions attached to an unknown_type warning.
const maxSuggestions = 3

// assemble builds the profile from the state of a finished run.
func (r *run) assemble() *profile.Profile {
	p := &profile.Profile{
		Metadata: profile.Metadata{Version: r.cfg.Version},
		RootDatasets: map[string]profile.RootDataset{
			DatasetClass: {Type: DatasetClass},
		},
		InputGroups:    cloneInputGroups(r.cfg.InputGroups),
		EnabledClasses: slices.Clone(r.cfg.EnabledClasses),
		Classes:        r.classes,
	}

	if r.root != nil {
		p.Metadata.Name = r.root.name
		p.Metadata.Description = r.root.description
		p.RootDatasets[r.root.class] = profile.RootDataset{Type: r.root.class}
		p.EnabledClasses = append([]string{r.root.class}, p.EnabledClasses...)
	}

	p.Normalize()

	return p
}

func cloneInputGroups(groups []profile.InputGroup) []profile.InputGroup {
	out := make([]profile.InputGroup, 0, len(groups))
	for _, g := range groups {
		g.Inputs = slices.Clone(g.Inputs)
		out = append(out, g)
	}

	return out
}

// checkTypes warns about input types that name neither a class, a mapped
// primitive, nor a configured known type.
func (r *run) checkTypes() {
	known := make(map[string]struct{})

	for name := range r.classes {
		known[name] = struct{}{}
	}

	for _, name := range r.resolver.MappedTypes() {
		known[name] = struct{}{}
	}

	for _, name := range r.cfg.KnownTypes {
		known[name] = struct{}{}
	}

	candidates := slices.Sorted(maps.Keys(known))

	for _, className := range slices.Sorted(maps.Keys(r.classes)) {
		for _, in := range r.classes[className].Inputs {
			for _, typ := range in.Type {
				if _, ok := known[typ]; ok {
					continue
				}

				r.diags.Add(diagnostic.Diagnostic{
					Severity:    diagnostic.SeverityWarning,
					Code:        diagnostic.CodeUnknownType,
					Message:     fmt.Sprintf("input type %q names no class", typ),
					Class:       className,
					Property:    in.Name,
					Suggestions: naming.Suggest(typ, candidates, maxSuggestions),
				})
			}
		}
	}
}

// reportUnresolved records the bare names no namespace matched.
func (r *run) reportUnresolved() {
	for _, id := range r.expander.Unresolved() {
		r.diags.AddInfo(diagnostic.CodeUnexpandedID,
			fmt.Sprintf("identifier %q matched no namespace and was kept as is", id), "", id)
	}
}
