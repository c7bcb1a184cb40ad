// Package naming derives display names for profile classes and inputs and
// ranks near-miss names for diagnostics.
//
// Key functions:
//   - Capitalize: upper-cases the first letter, keeping the rest as-is
//   - Label: splits camelCase boundaries and title-cases the result
//   - StripMarkup / StripPrefix: clean help text and namespaced type names
//   - Levenshtein / Suggest: edit distance and ranked "did you mean" lists
package naming
