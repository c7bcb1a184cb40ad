package schema

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"jsonschema2crateo/internal/common"
)

// RDFSClass is the @type marking a graph node as a class.
const RDFSClass = "rdfs:Class"

// Document is a parsed schema document. It is read-only once loaded.
type Document struct {
	Context Context     `json:"@context"`
	Graph   []GraphNode `json:"@graph"`
}

// GraphNode is one vocabulary entity of the @graph.
type GraphNode struct {
	ID         string        `json:"@id"`
	Types      StringOrArray `json:"@type"`
	Label      LangString    `json:"rdfs:label"`
	Comment    LangString    `json:"rdfs:comment"`
	SubClassOf IDRefs        `json:"rdfs:subClassOf"`
	Validation *Validation   `json:"$validation"`
}

// IsClass reports whether the node describes a class. Nodes without any
// @type are treated as classes.
func (n *GraphNode) IsClass() bool {
	return n.Types.IsEmpty() || n.Types.Contains(RDFSClass)
}

// Validation is the JSON Schema block attached to a graph node.
type Validation struct {
	Properties  Ordered[TypeExpr]   `json:"properties"`
	Required    StringOrArray       `json:"required"`
	Definitions Ordered[Definition] `json:"definitions"`
}

// Definition is an embedded sub-type of a $validation block.
type Definition struct {
	// Type is an explicit namespaced type such as "schema:Organization".
	Type        string            `json:"@type"`
	Description string            `json:"description"`
	Properties  Ordered[TypeExpr] `json:"properties"`
	Required    StringOrArray     `json:"required"`
	Vocabulary  *DefVocabulary    `json:"vocabulary"`
}

// DefVocabulary is the alternative "vocabulary" shape of a definition.
type DefVocabulary struct {
	Property   Ordered[TypeExpr] `json:"property"`
	ChildrenOf StringOrArray     `json:"children_of"`
}

// Members returns the definition's properties, falling back to
// vocabulary.property when no direct properties are declared.
func (d *Definition) Members() Ordered[TypeExpr] {
	if d.Properties.Len() > 0 || d.Vocabulary == nil {
		return d.Properties
	}

	return d.Vocabulary.Property
}

// SuperClasses returns the names listed in vocabulary.children_of.
func (d *Definition) SuperClasses() []string {
	if d.Vocabulary == nil {
		return nil
	}

	return d.Vocabulary.ChildrenOf
}

// LookupLabel returns the @id of the first graph node labelled label.
func (d *Document) LookupLabel(label string) (string, bool) {
	if d == nil {
		return "", false
	}

	for i := range d.Graph {
		if d.Graph[i].Label.String() == label && d.Graph[i].ID != "" {
			return d.Graph[i].ID, true
		}
	}

	return "", false
}

// --- Context ---

// Context is a one-level JSON-LD @context: prefix -> namespace URI, in
// document order. Object-valued terms contribute their @id; remote context
// references and other value shapes are ignored.
type Context struct {
	Ordered[string]
}

// NewContext builds a Context from prefix/URI pairs.
func NewContext(pairs ...string) Context {
	var c Context
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i], pairs[i+1])
	}

	return c
}

// UnmarshalJSON implements custom JSON unmarshaling for Context.
// Accepts an object, a list mixing objects and remote URLs, or a single URL.
func (c *Context) UnmarshalJSON(data []byte) error {
	var out Context

	switch firstByte(data) {
	case '{':
		if err := out.merge(data); err != nil {
			return err
		}

	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(data, &parts); err != nil {
			return err
		}

		for _, part := range parts {
			if firstByte(part) != '{' {
				continue
			}

			if err := out.merge(part); err != nil {
				return err
			}
		}

	case '"', 'n':
		// remote context or null: nothing to record
	default:
		return fmt.Errorf("expected @context object, array, or string, got %s", data)
	}

	*c = out

	return nil
}

func (c *Context) merge(data []byte) error {
	return decodeObject(data, func(key string, dec *json.Decoder) error {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		switch firstByte(raw) {
		case '"':
			var uri string
			if err := json.Unmarshal(raw, &uri); err != nil {
				return err
			}

			c.Set(key, uri)

		case '{':
			var term struct {
				ID string `json:"@id"`
			}

			if err := json.Unmarshal(raw, &term); err != nil {
				return err
			}

			if term.ID != "" {
				c.Set(key, term.ID)
			}
		}

		return nil
	})
}

// --- StringOrArray ---

// StringOrArray represents a value that can be either a single string or an array of strings.
type StringOrArray []string

// UnmarshalJSON implements custom JSON unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case '[':
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}

		*s = arr

		return nil

	case 'n':
		*s = nil
		return nil

	default:
		return fmt.Errorf("expected string or array, got %s", data)
	}
}

// MarshalJSON outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalJSON() ([]byte, error) {
	if common.IsSingle(s) {
		return json.Marshal(s[0])
	}

	return json.Marshal([]string(common.NonNil(s)))
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// Contains returns true if the array contains the given string.
func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}

// --- LangString ---

// LangString is an RDF literal given either as a plain string, as a
// {"@value": ...} object, or as a list of those (the first one wins).
type LangString string

// UnmarshalJSON implements custom JSON unmarshaling for LangString.
func (l *LangString) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*l = LangString(s)

	case '{':
		var v struct {
			Value string `json:"@value"`
		}

		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*l = LangString(v.Value)

	case '[':
		var list []LangString
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}

		if len(list) > 0 {
			*l = list[0]
		}

	case 'n':
		*l = ""

	default:
		return fmt.Errorf("expected string or @value object, got %s", data)
	}

	return nil
}

// String returns the literal value.
func (l LangString) String() string {
	return string(l)
}

// --- IDRefs ---

// IDRef is a JSON-LD node reference {"@id": ...}.
type IDRef struct {
	ID string `json:"@id"`
}

// IDRefs is one or many node references. Plain strings are accepted as ids.
type IDRefs []IDRef

// UnmarshalJSON implements custom JSON unmarshaling for IDRefs.
func (r *IDRefs) UnmarshalJSON(data []byte) error {
	switch firstByte(data) {
	case '{':
		var ref IDRef
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}

		*r = IDRefs{ref}

	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}

		*r = IDRefs{{ID: id}}

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}

		refs := make(IDRefs, 0, len(items))

		for _, item := range items {
			var one IDRefs
			if err := one.UnmarshalJSON(item); err != nil {
				return err
			}

			refs = append(refs, one...)
		}

		*r = refs

	case 'n':
		*r = nil

	default:
		return fmt.Errorf("expected {\"@id\": ...} or array, got %s", data)
	}

	return nil
}

// IDs returns the non-empty referenced ids in order.
func (r IDRefs) IDs() []string {
	out := make([]string, 0, len(r))
	for _, ref := range r {
		if ref.ID != "" {
			out = append(out, ref.ID)
		}
	}

	return out
}

// firstByte returns the first non-space byte of a JSON value, or 0.
func firstByte(data []byte) byte {
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if trimmed == "" {
		return 0
	}

	return trimmed[0]
}
