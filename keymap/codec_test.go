package keymap_test

import (
	"testing"

	"github.com/lmd-code/webstore/keymap"
	"github.com/shoenig/test/must"
)

func TestEncode_wraps_root(t *testing.T) {
	m := keymap.New()
	m.Set("greeting", "hello")

	data, err := keymap.Encode(m, keymap.DefaultSentinel)
	must.NoError(t, err)
	must.Eq(t, `{"_map":[["greeting","hello"]]}`, string(data))
}

func TestEncode_custom_sentinel(t *testing.T) {
	m := keymap.New()
	m.Set("k", true)

	data, err := keymap.Encode(m, "__store")
	must.NoError(t, err)
	must.Eq(t, `{"__store":[["k",true]]}`, string(data))
}

func TestEncode_unsupported_value(t *testing.T) {
	m := keymap.New()
	m.Set("fn", func() {})

	_, err := keymap.Encode(m, keymap.DefaultSentinel)
	must.Error(t, err)
}

func TestDecode_empty_and_malformed(t *testing.T) {
	m, err := keymap.Decode(nil, keymap.DefaultSentinel)
	must.NoError(t, err)
	must.Eq(t, 0, m.Len())

	m, err = keymap.Decode([]byte(""), keymap.DefaultSentinel)
	must.NoError(t, err)
	must.Eq(t, 0, m.Len())

	m, err = keymap.Decode([]byte("{not json"), keymap.DefaultSentinel)
	must.Error(t, err)
	must.Eq(t, 0, m.Len())
}

func TestDecode_non_collection_root(t *testing.T) {
	for _, text := range []string{`[1,2,3]`, `"hello"`, `42`, `{"plain":"object"}`} {
		m, err := keymap.Decode([]byte(text), keymap.DefaultSentinel)
		must.NoError(t, err)
		must.Eq(t, 0, m.Len())
	}
}

func TestRoundTrip_nested(t *testing.T) {
	inner := keymap.New()
	inner.Set("b", float64(2))
	inner.Set("a", float64(1))

	m := keymap.New()
	m.Set("str", "text")
	m.Set("num", float64(3.5))
	m.Set("flag", false)
	m.Set("none", nil)
	m.Set("list", []any{float64(1), "two", true})
	m.Set("obj", map[string]any{"plain": "object"})
	m.Set("nested", inner)

	data, err := keymap.Encode(m, keymap.DefaultSentinel)
	must.NoError(t, err)

	got, err := keymap.Decode(data, keymap.DefaultSentinel)
	must.NoError(t, err)

	must.Eq(t, m.Keys(), got.Keys())

	v, ok := got.Get("str")
	must.True(t, ok)
	must.Eq(t, "text", v.(string))

	v, _ = got.Get("num")
	must.Eq(t, 3.5, v.(float64))

	v, _ = got.Get("flag")
	must.False(t, v.(bool))

	v, _ = got.Get("none")
	must.Nil(t, v)

	v, _ = got.Get("list")
	must.Eq(t, []any{float64(1), "two", true}, v.([]any))

	v, _ = got.Get("obj")
	must.Eq(t, map[string]any{"plain": "object"}, v.(map[string]any))

	v, _ = got.Get("nested")
	gotInner, ok := v.(*keymap.Map)
	must.True(t, ok)
	must.Eq(t, []string{"b", "a"}, gotInner.Keys())

	// A second encode of the decoded tree reproduces the original text.
	again, err := keymap.Encode(got, keymap.DefaultSentinel)
	must.NoError(t, err)
	must.Eq(t, string(data), string(again))
}

func TestRoundTrip_deeply_nested(t *testing.T) {
	leaf := keymap.New()
	leaf.Set("depth", float64(3))
	mid := keymap.New()
	mid.Set("leaf", leaf)
	root := keymap.New()
	root.Set("mid", mid)

	data, err := keymap.Encode(root, keymap.DefaultSentinel)
	must.NoError(t, err)

	got, err := keymap.Decode(data, keymap.DefaultSentinel)
	must.NoError(t, err)

	v, ok := got.Get("mid")
	must.True(t, ok)
	v, ok = v.(*keymap.Map).Get("leaf")
	must.True(t, ok)
	v, ok = v.(*keymap.Map).Get("depth")
	must.True(t, ok)
	must.Eq(t, float64(3), v.(float64))
}

func TestSentinel_literal_value(t *testing.T) {
	// A plain value stored under the sentinel key itself is fine as long as
	// it is not shaped like the wrapper.
	m := keymap.New()
	m.Set(keymap.DefaultSentinel, "literal")

	data, err := keymap.Encode(m, keymap.DefaultSentinel)
	must.NoError(t, err)

	got, err := keymap.Decode(data, keymap.DefaultSentinel)
	must.NoError(t, err)

	v, ok := got.Get(keymap.DefaultSentinel)
	must.True(t, ok)
	must.Eq(t, "literal", v.(string))
}

func TestSentinel_shaped_value_is_misread(t *testing.T) {
	// Known limitation: a plain object that carries the sentinel key with an
	// entry-list value is indistinguishable from an encoded collection and
	// comes back as one.
	m := keymap.New()
	m.Set("trap", map[string]any{"_map": []any{[]any{"k", "v"}}})

	data, err := keymap.Encode(m, keymap.DefaultSentinel)
	must.NoError(t, err)

	got, err := keymap.Decode(data, keymap.DefaultSentinel)
	must.NoError(t, err)

	v, ok := got.Get("trap")
	must.True(t, ok)
	_, isMap := v.(*keymap.Map)
	must.True(t, isMap)
}
