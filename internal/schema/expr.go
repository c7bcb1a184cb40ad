package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the variant of a TypeExpr.
type Kind int

const (
	KindInvalid Kind = iota // none of the recognized shapes
	KindReference
	KindPrimitive
	KindArray
	KindAlternatives
)

// TypeArray is the JSON Schema type keyword that introduces items.
const TypeArray = "array"

// TypeExpr is one JSON Schema type expression.
type TypeExpr struct {
	Kind Kind

	// Ref is the $ref target of a KindReference.
	Ref string
	// Name is the type keyword of a KindPrimitive, e.g. "string".
	Name string
	// Items are the element expressions of a KindArray. An items object
	// gives one element, an items list one per entry.
	Items []TypeExpr
	// Alternatives are the oneOf/anyOf branches of a KindAlternatives.
	Alternatives []TypeExpr

	// Keyword is the type keyword when given as a string, kept even when a
	// $ref takes precedence over it.
	Keyword string
	// Shadowed are oneOf/anyOf branches of an expression whose $ref or type
	// took precedence. They never resolve but count for cardinality.
	Shadowed []TypeExpr

	Description string
	Format      string
	// Cardinality is the owl:cardinality marker, e.g. "one" or "many".
	Cardinality string

	// Raw keeps the source JSON of a KindInvalid expression.
	Raw json.RawMessage
}

// rawTypeExpr is the wire shape of a TypeExpr.
type rawTypeExpr struct {
	Ref         *string         `json:"$ref"`
	Type        json.RawMessage `json:"type"`
	NSType      json.RawMessage `json:"@type"`
	Items       json.RawMessage `json:"items"`
	OneOf       []TypeExpr      `json:"oneOf"`
	AnyOf       []TypeExpr      `json:"anyOf"`
	Description string          `json:"description"`
	Format      string          `json:"format"`
	Cardinality string          `json:"owl:cardinality"`
}

// ParseTypeExpr decodes a single type expression.
func ParseTypeExpr(data []byte) (TypeExpr, error) {
	var e TypeExpr
	if err := json.Unmarshal(data, &e); err != nil {
		return TypeExpr{}, err
	}

	return e, nil
}

// UnmarshalJSON decodes a type expression into its variant. Checked in order:
// $ref, then type (or @type when type is absent), then oneOf/anyOf.
func (e *TypeExpr) UnmarshalJSON(data []byte) error {
	if firstByte(data) != '{' {
		*e = TypeExpr{Kind: KindInvalid, Raw: bytes.Clone(data)}
		return nil
	}

	var raw rawTypeExpr
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := TypeExpr{
		Description: raw.Description,
		Format:      raw.Format,
		Cardinality: raw.Cardinality,
	}

	typ := raw.Type
	if isAbsent(typ) {
		typ = raw.NSType
	}

	if firstByte(typ) == '"' {
		if err := json.Unmarshal(typ, &out.Keyword); err != nil {
			return err
		}
	}

	items, err := decodeItems(raw.Items)
	if err != nil {
		return err
	}

	alternatives := make([]TypeExpr, 0, len(raw.OneOf)+len(raw.AnyOf))
	alternatives = append(alternatives, raw.OneOf...)
	alternatives = append(alternatives, raw.AnyOf...)

	switch {
	case raw.Ref != nil:
		out.Kind = KindReference
		out.Ref = *raw.Ref

	case !isAbsent(typ):
		if err := out.decodeType(typ, items); err != nil {
			return err
		}

	case raw.OneOf != nil || raw.AnyOf != nil:
		out.Kind = KindAlternatives
		out.Alternatives = alternatives
		alternatives = nil
	}

	if len(alternatives) > 0 {
		out.Shadowed = append(out.Shadowed, alternatives...)
	}

	if out.Kind == KindInvalid {
		out.Raw = bytes.Clone(data)
	}

	*e = out

	return nil
}

// decodeType fills e from the value of its type keyword.
func (e *TypeExpr) decodeType(typ json.RawMessage, items []TypeExpr) error {
	switch firstByte(typ) {
	case '"':
		var name string
		if err := json.Unmarshal(typ, &name); err != nil {
			return err
		}

		e.setPrimitiveOrArray(name, items)

	case '[':
		var names []string
		if json.Unmarshal(typ, &names) != nil {
			// not a list of keywords: the expression stays KindInvalid
			return nil
		}

		e.Kind = KindAlternatives
		e.Alternatives = make([]TypeExpr, 0, len(names))

		for _, name := range names {
			alt := TypeExpr{Format: e.Format, Keyword: name}
			alt.setPrimitiveOrArray(name, items)
			e.Alternatives = append(e.Alternatives, alt)
		}

	case '{':
		var inner TypeExpr
		if err := json.Unmarshal(typ, &inner); err != nil {
			return fmt.Errorf("nested type: %w", err)
		}

		inner.inherit(*e)
		*e = inner
	}

	return nil
}

func (e *TypeExpr) setPrimitiveOrArray(name string, items []TypeExpr) {
	if name == TypeArray {
		e.Kind = KindArray
		e.Items = items

		return
	}

	e.Kind = KindPrimitive
	e.Name = name
}

// DeclaresArray reports whether the expression's own type keyword is array.
func (e *TypeExpr) DeclaresArray() bool {
	return e.Kind == KindArray || e.Keyword == TypeArray
}

// decodeItems accepts a single items expression or a list of them.
func decodeItems(raw json.RawMessage) ([]TypeExpr, error) {
	if isAbsent(raw) {
		return nil, nil
	}

	if firstByte(raw) == '[' {
		var list []TypeExpr
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}

		return list, nil
	}

	var one TypeExpr
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}

	return []TypeExpr{one}, nil
}

// inherit fills annotations missing on e from outer.
func (e *TypeExpr) inherit(outer TypeExpr) {
	if e.Description == "" {
		e.Description = outer.Description
	}

	if e.Format == "" {
		e.Format = outer.Format
	}

	if e.Cardinality == "" {
		e.Cardinality = outer.Cardinality
	}
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
