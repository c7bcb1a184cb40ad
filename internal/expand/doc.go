// Package expand turns short, context-relative identifiers into URIs.
//
// Expansion order for an identifier:
//  1. Absolute URIs and JSON-LD keywords are returned unchanged.
//  2. A per-Expander cache is consulted.
//  3. A bare name is looked up by label in the schema graph; a match is
//     replaced by that node's @id.
//  4. A "prefix:suffix" identifier is expanded through the prefix overrides,
//     the description namespace rule, or the @context.
//  5. A bare name is tried against every @context namespace: the vocabulary
//     namespace by set membership, the others by an HTTP existence probe.
//     The first hit wins; with no hit the name is returned as-is.
package expand
