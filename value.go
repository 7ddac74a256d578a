package neon

import "fmt"

// Kind identifies which variant of Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the abstract JSON-equivalent value tree the codec operates on:
// one of null, bool, number, string, array, or object. It is a tagged
// struct rather than an interface hierarchy, matching the document's other
// plain-struct node types (Declare, Create, Unparsed in the teacher repo
// this format's tooling is grounded on).
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  *Object
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a Number value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Str returns a String value.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an Array value wrapping elems. The slice is not copied.
func Array(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// ObjectValue returns an Object value wrapping obj.
func ObjectValue(obj *Object) Value {
	if obj == nil {
		obj = NewObject()
	}
	return Value{kind: KindObject, obj: obj}
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() bool { return v.b }

func (v Value) Num() float64 { return v.n }

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}

// StrVal returns the string payload; only meaningful when Kind() == KindString.
func (v Value) StrVal() string { return v.s }

// Elements returns the array payload; only meaningful when Kind() == KindArray.
func (v Value) Elements() []Value { return v.arr }

// Obj returns the object payload; only meaningful when Kind() == KindObject.
func (v Value) Obj() *Object { return v.obj }

// Object is an insertion-ordered string-keyed map of Value, used for NEON
// object containers. Both codecs preserve insertion order end to end.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty, ready-to-use Object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set inserts or updates a key, appending it to the key order on first
// insertion only.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice must not be
// mutated by callers.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.keys) }

// KeySet returns the key set as a set for order-agnostic comparison, used
// by the encoder's tabular-array detection (spec: "same key set").
func (o *Object) KeySet() map[string]struct{} {
	set := make(map[string]struct{}, len(o.keys))
	for _, k := range o.keys {
		set[k] = struct{}{}
	}
	return set
}

// sameKeySet reports whether two key sets contain exactly the same keys,
// ignoring order.
func sameKeySet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// Equal reports whether two Values are equivalent under JSON equality:
// numbers compare by value, object key sets and values compare regardless
// of map internals but object *emission* order is not part of equality
// here (callers that care about order preservation should compare Keys()
// directly; spec.md's round-trip laws only require key-set and value
// equivalence for array-of-object comparisons).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.n == b.n
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, k := range a.obj.Keys() {
			av, _ := a.obj.Get(k)
			bv, ok := b.obj.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}
