package common

import (
	"cmp"
	"slices"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// SortedUnique returns the distinct elements of s in ascending order.
// The result is never nil, so it serializes as an empty JSON array.
func SortedUnique[S ~[]E, E cmp.Ordered](s S) S {
	out := make(S, 0, len(s))
	out = append(out, s...)
	slices.Sort(out)

	return slices.Compact(out)
}

// NonNil returns s, or an empty slice when s is nil.
func NonNil[S ~[]E, E any](s S) S {
	if s == nil {
		return S{}
	}

	return s
}
