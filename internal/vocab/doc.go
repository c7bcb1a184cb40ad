// Package vocab holds the external vocabulary (the schema.org JSON-LD
// graph) as a membership set of term URIs.
//
// schema.org answers 200 for any path, so the identifier expander asks
// this set instead of probing that host over HTTP.
//
// A Loader memoizes parsed vocabularies for the life of the process and can
// keep the raw download in an on-disk cache directory.
package vocab
