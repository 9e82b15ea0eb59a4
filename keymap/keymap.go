// Package keymap provides an insertion-ordered string-keyed collection and a
// JSON codec for it. Nested collections survive encoding by being wrapped in a
// single-key object whose key is a sentinel token, with the entries kept as an
// ordered list of [key, value] pairs.
package keymap

import (
	"iter"
)

// DefaultSentinel is the object key used to mark an encoded collection when
// the caller does not choose one.
const DefaultSentinel = "_map"

// Pair is a single key/value entry of a Map.
type Pair struct {
	Key   string
	Value any
}

// Map is an insertion-ordered mapping from string keys to arbitrary
// JSON-compatible values, including other Maps. The zero value is not usable;
// use New or FromPairs.
type Map struct {
	keys []string
	vals map[string]any
}

// New returns an empty Map.
func New() *Map {
	return &Map{vals: make(map[string]any)}
}

// FromPairs returns a Map populated from pairs, in order. Later duplicate
// keys overwrite earlier ones without changing their position.
func FromPairs(pairs ...Pair) *Map {
	m := New()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set stores value under key. A new key is appended to the iteration order;
// an existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Get returns the value stored under key and whether it exists.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key exists.
func (m *Map) Has(key string) bool {
	_, ok := m.vals[key]
	return ok
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if _, ok := m.vals[key]; !ok {
		return false
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all entries.
func (m *Map) Clear() {
	m.keys = nil
	m.vals = make(map[string]any)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates over entries in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				break
			}
		}
	}
}
