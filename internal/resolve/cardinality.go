package resolve

import (
	"strings"

	"jsonschema2crateo/internal/schema"
)

// CardinalityMany is the owl:cardinality marker for multi-valued properties.
const CardinalityMany = "many"

// IsMultiple reports whether a property accepts several values: an explicit
// many cardinality, an array type keyword, or an array among the direct
// oneOf/anyOf branches, including branches shadowed by a $ref or type.
// References are not followed.
func IsMultiple(e schema.TypeExpr) bool {
	if strings.EqualFold(e.Cardinality, CardinalityMany) {
		return true
	}

	if e.DeclaresArray() {
		return true
	}

	for _, alt := range e.Alternatives {
		if alt.DeclaresArray() {
			return true
		}
	}

	for _, alt := range e.Shadowed {
		if alt.DeclaresArray() {
			return true
		}
	}

	return false
}
