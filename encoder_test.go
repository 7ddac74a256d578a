package neon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_Scalars(t *testing.T) {
	enc := NewEncoder(DefaultEncodeOptions())
	out, err := enc.Encode(Null())
	require.NoError(t, err)
	assert.Equal(t, "N", out)

	out, err = enc.Encode(Bool(true))
	require.NoError(t, err)
	assert.Equal(t, "T", out)

	out, err = enc.Encode(Number(42))
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestEncoder_EmptyArray(t *testing.T) {
	out, err := NewEncoder(DefaultEncodeOptions()).Encode(Array(nil))
	require.NoError(t, err)
	assert.Equal(t, "#0", out)
}

func TestEncoder_InlinePrimitiveArray(t *testing.T) {
	out, err := NewEncoder(DefaultEncodeOptions()).Encode(Array([]Value{Number(1), Number(2), Number(3)}))
	require.NoError(t, err)
	assert.Equal(t, "#3 1 2 3", out)
}

func TestEncoder_TabularArray(t *testing.T) {
	row := func(id float64, name string) Value {
		o := NewObject()
		o.Set("id", Number(id))
		o.Set("name", Str(name))
		return ObjectValue(o)
	}
	arr := Array([]Value{row(1, "alice"), row(2, "bob")})

	opts := DefaultEncodeOptions()
	opts.AbbreviateFields = false
	out, err := NewEncoder(opts).Encode(arr)
	require.NoError(t, err)
	assert.Equal(t, "#2^id,name\n  1 alice\n  2 bob", out)
}

func TestEncoder_Object(t *testing.T) {
	o := NewObject()
	o.Set("id", Number(1))
	o.Set("name", Str("bob"))

	opts := DefaultEncodeOptions()
	opts.AbbreviateFields = false
	out, err := NewEncoder(opts).Encode(ObjectValue(o))
	require.NoError(t, err)
	assert.Equal(t, "@id:1 name:bob", out)
}

func TestEncoder_UltraCompactAbbreviatesFields(t *testing.T) {
	o := NewObject()
	o.Set("department", Str("eng"))

	opts := DefaultEncodeOptions()
	opts.Mode = UltraCompact
	out, err := NewEncoder(opts).Encode(ObjectValue(o))
	require.NoError(t, err)
	assert.Equal(t, "@dept:eng", out)
}

func TestEncoder_NestedNonEmptyObjectUsesBraceWrapping(t *testing.T) {
	inner := NewObject()
	inner.Set("city", Str("Oslo"))
	outer := NewObject()
	outer.Set("address", ObjectValue(inner))
	outer.Set("id", Number(1))

	opts := DefaultEncodeOptions()
	opts.AbbreviateFields = false
	out, err := NewEncoder(opts).Encode(ObjectValue(outer))
	require.NoError(t, err)
	assert.Equal(t, "@address:{city:Oslo} id:1", out)

	got, err := Decode(out)
	require.NoError(t, err)
	assert.True(t, Equal(ObjectValue(outer), got))
}

func TestEncoder_MixedPrimitiveArrayStaysInline(t *testing.T) {
	// Primitive arrays stay inline even with mixed scalar types; only
	// nested containers (or an array over MaxInlineArray) force the
	// one-row-per-line list layout.
	arr := Array([]Value{Number(1), Str("two"), Bool(true)})
	out, err := NewEncoder(DefaultEncodeOptions()).Encode(arr)
	require.NoError(t, err)
	assert.Equal(t, "#3 1 two T", out)
}

func TestEncoder_ListArrayForNestedContainers(t *testing.T) {
	o1 := NewObject()
	o1.Set("id", Number(1))
	arr := Array([]Value{ObjectValue(o1), Array([]Value{Number(1)})})

	out, err := NewEncoder(DefaultEncodeOptions()).Encode(arr)
	require.NoError(t, err)
	assert.Equal(t, "#2\n  - @id:1\n  - #1 1", out)
}

func TestEncoder_RootSingleKeyArrayUsesNamedArrayShorthand(t *testing.T) {
	row := func(id float64, name string, active bool) Value {
		o := NewObject()
		o.Set("id", Number(id))
		o.Set("name", Str(name))
		o.Set("active", Bool(active))
		return ObjectValue(o)
	}
	root := NewObject()
	root.Set("users", Array([]Value{row(1, "Alice", true), row(2, "Bob", false)}))

	out, err := NewEncoder(DefaultEncodeOptions()).Encode(ObjectValue(root))
	require.NoError(t, err)
	assert.Equal(t, "users#2^id,name,active\n  1 Alice T\n  2 Bob F", out)

	got, err := Decode(out)
	require.NoError(t, err)
	assert.True(t, Equal(ObjectValue(root), got))
}

func TestEncoder_EmptyObjectIsBareSigil(t *testing.T) {
	out, err := NewEncoder(DefaultEncodeOptions()).Encode(ObjectValue(NewObject()))
	require.NoError(t, err)
	assert.Equal(t, "@", out)

	got, err := Decode(out)
	require.NoError(t, err)
	require.Equal(t, KindObject, got.Kind())
	assert.Equal(t, 0, got.Obj().Len())
}

func TestEncoder_NestedObjectWithArrayValueNotRootDoesNotUseShorthand(t *testing.T) {
	// The named-array shorthand is root-level only: a single-key object
	// nested inside another container still uses the general `@` form,
	// since only the document entry point special-cases this shape.
	inner := NewObject()
	inner.Set("tags", Array([]Value{Str("a"), Str("b")}))
	outer := NewObject()
	outer.Set("wrapper", ObjectValue(inner))

	out, err := NewEncoder(DefaultEncodeOptions()).Encode(ObjectValue(outer))
	require.NoError(t, err)
	got, err := Decode(out)
	require.NoError(t, err)
	assert.True(t, Equal(ObjectValue(outer), got))
}

func TestEncoder_StringQuotingRoundtrips(t *testing.T) {
	opts := DefaultEncodeOptions()
	enc := NewEncoder(opts)
	for _, s := range []string{"plain", "has space", "has:colon", `has"quote`, "T", "42"} {
		out, err := enc.Encode(Str(s))
		require.NoError(t, err)
		dec, err := Decode(out)
		require.NoError(t, err)
		assert.Equal(t, s, dec.StrVal(), "round trip of %q via %q", s, out)
	}
}
