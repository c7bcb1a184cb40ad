// Package translate converts a schema document into a Crate-O profile.
//
// A Translator walks the @graph once in document order. Every class node
// becomes a profile class; the first node carrying a $validation block is
// the root dataset, its properties become the root class inputs, and each
// of its definitions becomes a class of its own. Type expressions are
// flattened by package resolve and identifiers are expanded by package
// expand, with one expansion cache per Translate call.
//
// Findings that do not stop the run (class name collisions, input types
// with no matching class, skipped nodes) are collected as diagnostics. In
// strict mode every warning fails the run.
package translate
