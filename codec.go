package neon

import "time"

// Encode renders v as NEON text using DefaultEncodeOptions, or the first
// element of opts if one is given.
func Encode(v Value, opts ...EncodeOptions) (string, error) {
	o := DefaultEncodeOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return NewEncoder(o).Encode(v)
}

// EncodeCompact renders v under CompactEncodeOptions.
func EncodeCompact(v Value) (string, error) {
	return NewEncoder(CompactEncodeOptions()).Encode(v)
}

// Decode parses NEON text into a Value using DefaultDecodeOptions, or the
// first element of opts if one is given.
func Decode(text string, opts ...DecodeOptions) (Value, error) {
	o := DefaultDecodeOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	return NewDecoder(o).Decode(text)
}

// Decoder parses NEON text into a Value tree under a fixed DecodeOptions,
// mirroring Encoder.
type Decoder struct {
	opts  DecodeOptions
	stats Stats
}

// NewDecoder returns a Decoder that will parse text under opts.
func NewDecoder(opts DecodeOptions) *Decoder {
	return &Decoder{opts: opts}
}

// Stats reports the sizing statistics from the most recent Decode call.
func (d *Decoder) Stats() Stats { return d.stats }

// Decode lexes and parses text, returning the resulting Value.
func (d *Decoder) Decode(text string) (Value, error) {
	start := time.Now()

	tokens, err := NewLexer(text).Lex()
	if err != nil {
		return Value{}, err
	}

	p := NewParser(tokens, d.opts, "")
	v, err := p.ParseDocument()
	if err != nil {
		return Value{}, err
	}

	if d.opts.Strict && !p.atEnd() {
		return Value{}, newSyntaxError(p.peek().Pos(""), "unexpected trailing content")
	}

	outputSize := len(text)
	if raw, err := ToJSON(v, ""); err == nil {
		outputSize = len(raw)
	}
	d.stats = computeStats(len(text), outputSize, time.Since(start), false)
	return v, nil
}
