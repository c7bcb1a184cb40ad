package expand

import (
	"errors"
	"fmt"
)

// ErrUnknownNamespacePrefix is returned when a prefixed identifier uses a
// prefix that neither the @context nor the overrides define.
var ErrUnknownNamespacePrefix = errors.New("unknown namespace prefix")

// UnknownPrefixError reports the identifier and prefix that failed.
type UnknownPrefixError struct {
	Identifier string
	Prefix     string
}

func (e *UnknownPrefixError) Error() string {
	return fmt.Sprintf("%v %q in identifier %q", ErrUnknownNamespacePrefix, e.Prefix, e.Identifier)
}

func (e *UnknownPrefixError) Unwrap() error { return ErrUnknownNamespacePrefix }
