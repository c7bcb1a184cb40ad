// Package profile defines the Crate-O profile document produced by the
// translator, together with helpers to serialize it and to check it against
// the profile meta-schema.
//
// The same types carry the static fragments of the configuration (the
// Dataset class and the input groups), so they are tagged for both JSON and
// YAML.
package profile
