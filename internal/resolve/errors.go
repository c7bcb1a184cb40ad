package resolve

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedTypeExpression is wrapped by UnrecognizedTypeExpressionError.
var ErrUnrecognizedTypeExpression = errors.New("unrecognized type expression")

// UnrecognizedTypeExpressionError reports an expression with none of $ref,
// type, oneOf or anyOf.
type UnrecognizedTypeExpressionError struct {
	Path string
	Raw  []byte
}

func (e *UnrecognizedTypeExpressionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s", ErrUnrecognizedTypeExpression, e.Raw)
	}

	return fmt.Sprintf("%v at %s: %s", ErrUnrecognizedTypeExpression, e.Path, e.Raw)
}

func (e *UnrecognizedTypeExpressionError) Unwrap() error { return ErrUnrecognizedTypeExpression }

// RefError indicates a $ref whose definition name cannot be extracted.
type RefError struct {
	Path string
	Ref  string
	Err  error
}

func (e *RefError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("$ref %q: %v", e.Ref, e.Err)
	}

	return fmt.Sprintf("%s.$ref %q: %v", e.Path, e.Ref, e.Err)
}

func (e *RefError) Unwrap() error { return e.Err }
