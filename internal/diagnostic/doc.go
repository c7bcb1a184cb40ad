// Package diagnostic provides structured warnings, errors, and notes
// collected while translating a schema document into a profile.
//
// Key capabilities:
//   - Class name collision warnings
//   - Dangling type reference reports with ranked suggestions
//   - Skipped graph node and unexpanded identifier notes
//   - Strict-mode escalation of warnings into errors
package diagnostic
