package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Ordered is a string-keyed map that remembers the order keys were added.
// Re-adding a key replaces its value but keeps its original position.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

// Set adds or replaces the value for key.
func (o *Ordered[V]) Set(key string, value V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}

	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}

	o.values[key] = value
}

// Get returns the value for key.
func (o Ordered[V]) Get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (o Ordered[V]) Keys() []string {
	return o.keys
}

// Len returns the number of entries.
func (o Ordered[V]) Len() int {
	return len(o.keys)
}

// All iterates over entries in insertion order.
func (o Ordered[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// UnmarshalJSON decodes a JSON object, preserving member order.
func (o *Ordered[V]) UnmarshalJSON(data []byte) error {
	var out Ordered[V]

	err := decodeObject(data, func(key string, dec *json.Decoder) error {
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%q: %w", key, err)
		}

		out.Set(key, v)

		return nil
	})
	if err != nil {
		return err
	}

	*o = out

	return nil
}

// decodeObject walks the members of a JSON object in order, handing the
// decoder to member positioned on each value. A JSON null is an empty object.
func decodeObject(data []byte, member func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		return nil
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}

		if err := member(key, dec); err != nil {
			return err
		}
	}

	_, err = dec.Token()

	return err
}
