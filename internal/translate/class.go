package translate

import (
	"context"
	"fmt"
	"log/slog"

	"jsonschema2crateo/internal/diagnostic"
	"jsonschema2crateo/internal/naming"
	"jsonschema2crateo/internal/profile"
	"jsonschema2crateo/internal/schema"
)

// translateNode records the class of one graph node and, when the node has
// a $validation block, its inputs and definitions.
func (r *run) translateNode(ctx context.Context, node *schema.GraphNode) error {
	if !node.IsClass() {
		r.diags.AddInfo(diagnostic.CodeSkippedNode,
			fmt.Sprintf("graph node of type %v is not an %s", []string(node.Types), schema.RDFSClass), "", node.ID)

		return nil
	}

	label := node.Label.String()
	if label == "" {
		label = naming.StripPrefix(node.ID)
		if label == "" {
			r.diags.AddWarning(diagnostic.CodeMissingLabel, "class node has neither label nor @id; skipped", "", "")
			return nil
		}

		r.diags.AddWarning(diagnostic.CodeMissingLabel, "class node has no rdfs:label; using its @id", "", node.ID)
	}

	className := naming.Capitalize(label)

	supers, err := r.expander.ExpandAll(ctx, node.SubClassOf.IDs(), false)
	if err != nil {
		return fmt.Errorf("rdfs:subClassOf: %w", err)
	}

	v := node.Validation
	if v == nil {
		r.addClass(className, profile.NewClass(supers, nil), "graph node "+node.ID)
		return nil
	}

	if r.root == nil {
		r.root = &rootDataset{
			class:       className,
			name:        label,
			description: naming.StripMarkup(node.Comment.String()),
		}

		r.logger.DebugContext(ctx, "root dataset", slog.String("class", className))
	}

	inputs, err := r.translateProperties(ctx, className, v.Properties, v.Required)
	if err != nil {
		return err
	}

	r.addClass(className, profile.NewClass(supers, inputs), "graph node "+node.ID)

	for name, def := range v.Definitions.All() {
		defName, class, err := r.translateDefinition(ctx, name, &def)
		if err != nil {
			return fmt.Errorf("definition %q: %w", name, err)
		}

		r.addClass(defName, class, fmt.Sprintf("definition %q of %s", name, className))
	}

	return nil
}

// translateDefinition converts one $validation definition into a class.
func (r *run) translateDefinition(ctx context.Context, name string, def *schema.Definition) (string, profile.Class, error) {
	className := naming.Capitalize(name)

	if def.Type != "" {
		expanded, err := r.expander.Expand(ctx, def.Type, false)
		if err != nil {
			return "", profile.Class{}, fmt.Errorf("@type: %w", err)
		}

		className = expanded
	}

	supers, err := r.expander.ExpandAll(ctx, def.SuperClasses(), false)
	if err != nil {
		return "", profile.Class{}, fmt.Errorf("children_of: %w", err)
	}

	inputs, err := r.translateProperties(ctx, className, def.Members(), def.Required)
	if err != nil {
		return "", profile.Class{}, err
	}

	return className, profile.NewClass(supers, inputs), nil
}

// addClass inserts a class. A later class with the same name replaces the
// earlier one and is reported.
func (r *run) addClass(name string, class profile.Class, origin string) {
	if prev, ok := r.origins[name]; ok {
		r.diags.AddWarning(diagnostic.CodeClassCollision,
			fmt.Sprintf("class from %s replaces the one from %s", origin, prev), name, "")
	}

	r.classes[name] = class
	r.origins[name] = origin
}
