package keymap

import (
	"encoding/json"
	"fmt"
)

// Encode renders m as JSON text. Every Map node, the root included, is
// replaced prior to encoding by the wrapper object {sentinel: [[k, v], ...]},
// with the entry list in the Map's insertion order. Values that have no JSON
// representation make Encode fail; nothing is partially written.
func Encode(m *Map, sentinel string) ([]byte, error) {
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	data, err := json.Marshal(wrap(m, sentinel))
	if err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}
	return data, nil
}

// Decode parses JSON text produced by Encode back into a Map.
//
// Empty input yields an empty Map. Malformed JSON yields an empty Map and an
// error the caller may log. A well-formed root that is not a wrapped
// collection also yields an empty Map, silently: the root slot is defined to
// always hold a mapping, so stray top-level arrays and scalars are discarded.
func Decode(data []byte, sentinel string) (*Map, error) {
	if sentinel == "" {
		sentinel = DefaultSentinel
	}
	if len(data) == 0 {
		return New(), nil
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return New(), fmt.Errorf("failed to decode collection: %w", err)
	}

	if m, ok := revive(root, sentinel).(*Map); ok {
		return m, nil
	}
	return New(), nil
}

// wrap converts a value tree into its JSON-encodable form, replacing Map
// nodes with wrapper objects. Plain maps and slices are walked so that Maps
// nested inside them are wrapped too.
func wrap(v any, sentinel string) any {
	switch t := v.(type) {
	case *Map:
		entries := make([][2]any, 0, t.Len())
		for k, val := range t.All() {
			entries = append(entries, [2]any{k, wrap(val, sentinel)})
		}
		return map[string]any{sentinel: entries}
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = wrap(val, sentinel)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = wrap(val, sentinel)
		}
		return out
	default:
		return v
	}
}

// revive is the inverse walk: any object carrying the sentinel key with an
// entry-list value becomes a Map. An object that merely has the sentinel key
// but not the entry-list shape passes through as a plain object; a user value
// that happens to have the full wrapper shape is indistinguishable from a
// nested collection and is revived as one. That ambiguity is inherent to the
// format and left undetected.
func revive(v any, sentinel string) any {
	switch t := v.(type) {
	case map[string]any:
		if raw, ok := t[sentinel]; ok {
			if entries, ok := raw.([]any); ok {
				return reviveEntries(entries, sentinel)
			}
		}
		for k, val := range t {
			t[k] = revive(val, sentinel)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = revive(val, sentinel)
		}
		return t
	default:
		return v
	}
}

func reviveEntries(entries []any, sentinel string) *Map {
	m := New()
	for _, e := range entries {
		pair, ok := e.([]any)
		if !ok || len(pair) != 2 {
			continue
		}
		key, ok := pair[0].(string)
		if !ok {
			continue
		}
		m.Set(key, revive(pair[1], sentinel))
	}
	return m
}
