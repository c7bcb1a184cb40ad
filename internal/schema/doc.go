// Package schema provides the input data model: a JSON-LD document whose
// @graph nodes carry BioSchemas-style JSON Schema ($validation) blocks.
//
// Objects whose key order matters (@context, properties, definitions) are
// decoded into Ordered maps so translation follows document order.
//
// # Type expressions
//
// A JSON Schema property is decoded into a TypeExpr, a closed set of variants:
//
//	{"$ref": "#/definitions/person"}                 -> KindReference
//	{"type": "string", "format": "uri"}              -> KindPrimitive
//	{"type": "array", "items": {...}}                -> KindArray
//	{"oneOf": [...]} / {"anyOf": [...]}              -> KindAlternatives
//	{"type": ["string", "null"]}                     -> KindAlternatives of primitives
//	{"type": {"type": "string"}}                     -> the nested expression
//
// Anything else decodes as KindInvalid and keeps its raw JSON, so the
// resolver can report exactly what it could not understand.
package schema
