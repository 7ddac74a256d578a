package neon

import (
	"bytes"
	"encoding/json"
)

// FromJSON decodes standard JSON bytes into a Value tree, preserving
// object key order (encoding/json's map-based Unmarshal does not, so this
// walks a json.Decoder token stream instead). This is the codec's JSON
// boundary collaborator, per spec.md section 4.6 — translating NEON
// to/from textual JSON is a caller concern, not something the core codec
// needs for its own round trip, but the CLI (and tests that compare
// against JSON fixtures) need it.
func FromJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return Value{}, WrapJSONError(err)
	}
	return v, nil
}

// ToJSON renders v as standard JSON bytes.
func ToJSON(v Value, indent string) ([]byte, error) {
	raw, err := jsonRawValue(v)
	if err != nil {
		return nil, WrapJSONError(err)
	}
	if indent == "" {
		return json.Marshal(raw)
	}
	return json.MarshalIndent(raw, "", indent)
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Number(f), nil
	case string:
		return Str(t), nil
	case json.Delim:
		switch t {
		case '[':
			var elems []Value
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, v)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return Value{}, err
			}
			return Array(elems), nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, _ := keyTok.(string)
				v, err := decodeJSONValue(dec)
				if err != nil {
					return Value{}, err
				}
				obj.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return Value{}, err
			}
			return ObjectValue(obj), nil
		}
	}
	return Value{}, newDecodeError(Pos{}, "unexpected JSON token %v", tok)
}

// jsonRawValue renders v to a json.RawMessage tree that preserves object
// key order (json.Marshal of map[string]any would not).
func jsonRawValue(v Value) (json.RawMessage, error) {
	switch v.Kind() {
	case KindNull:
		return json.RawMessage("null"), nil
	case KindBool:
		if v.Bool() {
			return json.RawMessage("true"), nil
		}
		return json.RawMessage("false"), nil
	case KindNumber:
		b, err := json.Marshal(v.Num())
		return b, err
	case KindString:
		return json.Marshal(v.StrVal())
	case KindArray:
		var buf []byte
		buf = append(buf, '[')
		for i, el := range v.Elements() {
			if i > 0 {
				buf = append(buf, ',')
			}
			raw, err := jsonRawValue(el)
			if err != nil {
				return nil, err
			}
			buf = append(buf, raw...)
		}
		buf = append(buf, ']')
		return buf, nil
	case KindObject:
		var buf []byte
		buf = append(buf, '{')
		for i, k := range v.Obj().Keys() {
			if i > 0 {
				buf = append(buf, ',')
			}
			keyRaw, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf = append(buf, keyRaw...)
			buf = append(buf, ':')
			val, _ := v.Obj().Get(k)
			raw, err := jsonRawValue(val)
			if err != nil {
				return nil, err
			}
			buf = append(buf, raw...)
		}
		buf = append(buf, '}')
		return buf, nil
	}
	return nil, newEncodeError("cannot render value of kind %s as JSON", v.Kind())
}
