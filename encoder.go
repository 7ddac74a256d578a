package neon

import (
	"fmt"
	"strings"
	"time"
)

// Encoder renders a Value tree as NEON text under a fixed EncodeOptions,
// mirroring the matching Parser/Lexer pair: arrays declare their length
// (`#n`) so a reader always knows how many rows to expect; objects carry
// no count at all (`@key:value ...`), terminated instead by a newline,
// EOF, or a nested non-empty object wrapped in braces (`key:{entries}`).
type Encoder struct {
	opts  EncodeOptions
	stats Stats
}

// NewEncoder returns an Encoder that will render values under opts.
func NewEncoder(opts EncodeOptions) *Encoder {
	return &Encoder{opts: opts}
}

// Stats reports the sizing/ratio statistics from the most recent Encode
// call.
func (e *Encoder) Stats() Stats { return e.stats }

// Encode renders v as NEON text.
func (e *Encoder) Encode(v Value) (string, error) {
	start := time.Now()
	var b strings.Builder
	if err := e.writeRoot(&b, v); err != nil {
		return "", err
	}
	out := b.String()
	inputSize := 0
	if raw, err := ToJSON(v, ""); err == nil {
		inputSize = len(raw)
	}
	e.stats = computeStats(inputSize, len(out), time.Since(start), true)
	return out, nil
}

// writeRoot special-cases a root-level single-key object whose value is an
// array, emitting the named-array shorthand (`name#n...`, no leading `@`)
// instead of the general object form, per spec.md section 4.3. This is
// the inverse of parseNamedArray and is what gives NEON's headline
// "users#2^id,name,active" example its compactness; the general `@`
// grammar is reserved for objects that don't fit this shape.
func (e *Encoder) writeRoot(b *strings.Builder, v Value) error {
	if v.Kind() == KindObject && v.Obj().Len() == 1 {
		keys := v.Obj().Keys()
		val, _ := v.Obj().Get(keys[0])
		if val.Kind() == KindArray {
			b.WriteString(encodeKey(keys[0], e.abbreviate()))
			return e.writeArray(b, val, 0)
		}
	}
	return e.writeValue(b, v, 0)
}

// rowSep separates array rows (tabular or list-mixed layout) with the
// configured line ending, followed by indent*(depth) spaces of
// indentation. The line ending itself is structural, not cosmetic, in
// every Mode: parseArray decides between its inline and multiline
// branches by checking whether a Newline token follows the length/
// schema, so even UltraCompact output needs one between rows. The
// indentation spaces are purely cosmetic and scale with the Indent
// option, independent of Mode (spec.md section 4.3's `#n^id,name,active`
// example renders indented rows under the default, non-Readable mode).
func (e *Encoder) rowSep(depth int) string {
	sep := e.opts.LineEnding
	if sep == "" {
		sep = "\n"
	}
	if e.opts.Indent > 0 {
		sep += strings.Repeat(" ", depth*e.opts.Indent)
	}
	return sep
}

func (e *Encoder) writeValue(b *strings.Builder, v Value, depth int) error {
	switch v.Kind() {
	case KindNull:
		b.WriteString(e.encodeNull())
	case KindBool:
		b.WriteString(e.encodeBool(v.Bool()))
	case KindNumber:
		b.WriteString(formatNumber(v.Num(), e.opts.CompressNumbers))
	case KindString:
		b.WriteString(e.encodeStringValue(v.StrVal()))
	case KindArray:
		return e.writeArray(b, v, depth)
	case KindObject:
		return e.writeObject(b, v, depth)
	default:
		return newEncodeError("cannot encode value of kind %s", v.Kind())
	}
	return nil
}

func (e *Encoder) encodeNull() string {
	if e.opts.CompressNulls {
		return string(SigilNull)
	}
	return "null"
}

func (e *Encoder) encodeBool(v bool) string {
	if v {
		if e.opts.CompressBooleans {
			return string(SigilTrue)
		}
		return "true"
	}
	if e.opts.CompressBooleans {
		return string(SigilFalse)
	}
	return "false"
}

func (e *Encoder) encodeStringValue(s string) string {
	if e.opts.CompressStrings && !needsQuoting(s, e.opts.Delimiter) {
		return encodeUnquotedString(s)
	}
	return quoteString(s)
}

func (e *Encoder) abbreviate() bool {
	return e.opts.AbbreviateFields || e.opts.Mode == UltraCompact
}

// writeObject implements spec.md section 6's object grammar: `@` followed
// by space-separated "key:value" / "key#array" entries, with no declared
// count (an empty object is a bare `@`, handled by writeObjectEntries
// writing nothing). This mirrors the reference encoder's encode_object:
// a nested, non-empty object value is never written bare inline (there
// would be no way for the parser to tell where it ends and the next
// sibling field begins) but wrapped in braces instead.
func (e *Encoder) writeObject(b *strings.Builder, v Value, depth int) error {
	b.WriteByte(SigilObject)
	return e.writeObjectEntries(b, v.Obj(), depth)
}

func (e *Encoder) writeObjectEntries(b *strings.Builder, obj *Object, depth int) error {
	for i, k := range obj.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		val, _ := obj.Get(k)
		b.WriteString(encodeKey(k, e.abbreviate()))
		switch {
		case val.Kind() == KindObject && val.Obj().Len() > 0:
			b.WriteByte(SigilColon)
			b.WriteByte(SigilBraceOpen)
			if err := e.writeObjectEntries(b, val.Obj(), depth+1); err != nil {
				return err
			}
			b.WriteByte(SigilBraceClose)
		case val.Kind() == KindArray:
			if err := e.writeArray(b, val, depth+1); err != nil {
				return err
			}
		default:
			b.WriteByte(SigilColon)
			if err := e.writeValue(b, val, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeArray implements the `#n[^schema]` grammar, choosing one of three
// layouts per spec.md section 4.3: tabular (homogeneous non-empty
// objects sharing one key set), inline primitive (any mix of scalar
// types), or one-row-per-line list for anything else (nested containers,
// or a primitive array long enough to exceed MaxInlineArray).
func (e *Encoder) writeArray(b *strings.Builder, v Value, depth int) error {
	elems := v.Elements()
	n := len(elems)
	fmt.Fprintf(b, "%c%d", SigilArray, n)
	if n == 0 {
		return nil
	}

	if schema, ok := e.detectTabularSchema(elems); ok {
		return e.writeTabularArray(b, elems, schema, depth)
	}

	if e.allPrimitive(elems) && (e.opts.MaxInlineArray <= 0 || n <= e.opts.MaxInlineArray) {
		for _, el := range elems {
			b.WriteByte(' ')
			if err := e.writeValue(b, el, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	return e.writeListArray(b, elems, depth)
}

func (e *Encoder) detectTabularSchema(elems []Value) ([]string, bool) {
	first := elems[0]
	if first.Kind() != KindObject || first.Obj().Len() == 0 {
		return nil, false
	}
	keys := first.Obj().Keys()
	keySet := first.Obj().KeySet()
	for _, el := range elems[1:] {
		if el.Kind() != KindObject {
			return nil, false
		}
		if !sameKeySet(keySet, el.Obj().KeySet()) {
			return nil, false
		}
	}
	return keys, true
}

func (e *Encoder) allPrimitive(elems []Value) bool {
	for _, el := range elems {
		switch el.Kind() {
		case KindNull, KindBool, KindNumber, KindString:
		default:
			return false
		}
	}
	return true
}

func (e *Encoder) writeTabularArray(b *strings.Builder, elems []Value, schema []string, depth int) error {
	b.WriteByte(SigilSchema)
	for i, field := range schema {
		if i > 0 {
			b.WriteByte(SigilComma)
		}
		b.WriteString(encodeKey(field, e.abbreviate()))
	}
	for _, el := range elems {
		obj := el.Obj()
		b.WriteString(e.rowSep(depth + 1))
		for i, field := range schema {
			if i > 0 {
				b.WriteByte(' ')
			}
			val, _ := obj.Get(field)
			if err := e.writeValue(b, val, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Encoder) writeListArray(b *strings.Builder, elems []Value, depth int) error {
	for _, el := range elems {
		b.WriteString(e.rowSep(depth + 1))
		b.WriteByte(SigilListItem)
		b.WriteByte(' ')
		if err := e.writeValue(b, el, depth+1); err != nil {
			return err
		}
	}
	return nil
}
