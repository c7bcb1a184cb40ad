// Package resolve turns JSON Schema type expressions into flat lists of
// profile type descriptors and classifies their cardinality.
//
// Resolution never follows a $ref: a reference contributes only the
// capitalized name of the definition it points at. The referenced
// definition becomes a class of its own when it is translated.
package resolve
