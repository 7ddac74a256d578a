package neon

import "strconv"

// Parser is a recursive-descent parser over a token buffer, matching the
// teacher's "Scanner directly from the recursive descent parser" shape
// (sqlparser.Parser/Scanner) but operating over a pre-lexed Token slice
// rather than a live cursor, per spec.md section 4.2's "token buffer with
// a current index".
type Parser struct {
	tokens []Token
	pos    int
	depth  int
	opts   DecodeOptions
	file   string
}

// NewParser returns a Parser over tokens. file is used only to annotate
// Syntax error positions.
func NewParser(tokens []Token, opts DecodeOptions, file string) *Parser {
	return &Parser{tokens: tokens, opts: opts, file: file}
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[idx]
}

func (p *Parser) advance() Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) pos_(t Token) Pos {
	return t.Pos(p.file)
}

func (p *Parser) skipNewlines() {
	for p.peek().Kind == TokenNewline {
		p.advance()
	}
}

// ParseDocument is the parser's entry point (spec.md section 4.2): skip
// leading newlines, return Null on an empty document, otherwise parse one
// value.
func (p *Parser) ParseDocument() (Value, error) {
	p.skipNewlines()
	if p.atEnd() {
		return Null(), nil
	}
	return p.parseValue()
}

func (p *Parser) parseValue() (Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.MaxDepth {
		return Value{}, newMaxDepthError(p.opts.MaxDepth)
	}

	tok := p.peek()

	switch tok.Kind {
	case TokenEOF:
		return Null(), nil
	case TokenNull:
		p.advance()
		return Null(), nil
	case TokenBool:
		p.advance()
		return Bool(tok.Value == "true"), nil
	case TokenNumber:
		p.advance()
		n, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			n = 0
		}
		return Number(n), nil
	case TokenString:
		if p.peekAt(1).Kind == TokenArrayStart {
			return p.parseNamedArray()
		}
		p.advance()
		return Str(p.expand(tok.Value)), nil
	case TokenObjectStart:
		return p.parseObject()
	case TokenArrayStart:
		return p.parseArray()
	default:
		p.advance()
		return Str(tok.Value), nil
	}
}

func (p *Parser) expand(s string) string {
	if p.opts.ExpandAbbreviations {
		return ExpandField(s)
	}
	return s
}

// parseNamedArray implements spec.md section 4.2a: `name#n...` at any
// position where a value is expected decodes to a single-entry object
// {name: array}.
func (p *Parser) parseNamedArray() (Value, error) {
	nameTok := p.advance() // the string
	arr, err := p.parseArray()
	if err != nil {
		return Value{}, err
	}
	obj := NewObject()
	obj.Set(p.expand(nameTok.Value), arr)
	return ObjectValue(obj), nil
}

// parseObject implements spec.md section 6's object grammar: `@` followed
// by zero or more space-separated "key:value" / "key#array" entries, with
// no declared field count. Entries run until a Newline, Eof, or a
// lookahead that isn't a string (an object never spans past the first
// token that doesn't look like another key). A field whose value is
// itself a non-empty object is wrapped in braces (`key:{entries}`,
// parseBracedObject below) rather than nested bare, since a bare nested
// `@...` sitting inline would have no way to tell where it ends and the
// parent's next field begins.
func (p *Parser) parseObject() (Value, error) {
	p.advance() // ObjectStart
	obj, err := p.parseObjectEntries(func() bool {
		k := p.peek().Kind
		return k == TokenNewline || k == TokenEOF
	})
	if err != nil {
		return Value{}, err
	}
	return ObjectValue(obj), nil
}

// parseBracedObject reads a nested, non-empty object's entries out of a
// `{...}` wrapper, per spec.md section 6's `key ":{" entries "}"`
// production. The opening brace must already be the current token.
func (p *Parser) parseBracedObject() (Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.MaxDepth {
		return Value{}, newMaxDepthError(p.opts.MaxDepth)
	}

	start := p.advance() // BraceOpen
	obj, err := p.parseObjectEntries(func() bool {
		k := p.peek().Kind
		return k == TokenBraceClose || k == TokenEOF
	})
	if err != nil {
		return Value{}, err
	}
	if p.peek().Kind != TokenBraceClose {
		return Value{}, newSyntaxError(p.pos_(start), "unterminated nested object, expected '}'")
	}
	p.advance() // BraceClose
	return ObjectValue(obj), nil
}

// parseObjectEntries reads "key:value" / "key#array" entries until stop
// reports true or the next token isn't a string (which ends the entry
// list the same way running out of declared count used to).
func (p *Parser) parseObjectEntries(stop func() bool) (*Object, error) {
	obj := NewObject()
	for !stop() {
		keyTok := p.peek()
		if keyTok.Kind != TokenString {
			break
		}
		p.advance()
		key := p.expand(keyTok.Value)

		switch p.peek().Kind {
		case TokenColon:
			p.advance()
			var v Value
			var err error
			if p.peek().Kind == TokenBraceOpen {
				v, err = p.parseBracedObject()
			} else {
				v, err = p.parseValue()
			}
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		case TokenArrayStart:
			v, err := p.parseArray()
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		default:
			return obj, nil
		}
	}
	return obj, nil
}

// parseSchema reads a comma-separated list of field names immediately
// following an array's SchemaStart token.
func (p *Parser) parseSchema() ([]string, error) {
	var fields []string
	tok := p.peek()
	if tok.Kind != TokenString {
		return nil, newSyntaxError(p.pos_(tok), "expected schema field name")
	}
	p.advance()
	fields = append(fields, p.expand(tok.Value))
	for p.peek().Kind == TokenComma {
		p.advance()
		tok = p.peek()
		if tok.Kind != TokenString {
			return nil, newSyntaxError(p.pos_(tok), "expected schema field name after ','")
		}
		p.advance()
		fields = append(fields, p.expand(tok.Value))
	}
	return fields, nil
}

// parseArray implements spec.md section 4.2's `#n[^schema]` grammar. The
// declared length n is authoritative for termination; per SPEC_FULL.md's
// resolution of open question 3, a short array (fewer than n values
// before EOF) is a Syntax error rather than silently padded with Null.
func (p *Parser) parseArray() (Value, error) {
	start := p.advance() // ArrayStart
	lenTok := p.peek()
	if lenTok.Kind != TokenNumber {
		return Value{}, newSyntaxError(p.pos_(start), "expected array length after '#'")
	}
	p.advance()
	n64, err := strconv.ParseFloat(lenTok.Value, 64)
	if err != nil || n64 < 0 {
		return Value{}, newSyntaxError(p.pos_(lenTok), "invalid array length %q", lenTok.Value)
	}
	n := int(n64)

	if n == 0 {
		return Array(nil), nil
	}

	var schema []string
	if p.peek().Kind == TokenSchemaStart {
		p.advance()
		schema, err = p.parseSchema()
		if err != nil {
			return Value{}, err
		}
	}

	next := p.peek().Kind
	if next != TokenNewline && next != TokenEOF {
		return p.parseInlineArray(n, start)
	}
	if schema != nil {
		return p.parseTabularRows(n, schema, start)
	}
	return p.parseListRows(n, start)
}

func (p *Parser) parseInlineArray(n int, start Token) (Value, error) {
	vals := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		k := p.peek().Kind
		if k == TokenNewline || k == TokenEOF {
			break
		}
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		vals = append(vals, v)
	}
	if len(vals) < n {
		return Value{}, newSyntaxError(p.pos_(start), "array declared length %d but only %d values present", n, len(vals))
	}
	return Array(vals), nil
}

func (p *Parser) parseTabularRows(n int, schema []string, start Token) (Value, error) {
	rows := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		p.skipNewlines()
		if p.atEnd() {
			return Value{}, newSyntaxError(p.pos_(start), "array declared length %d but only %d rows present", n, len(rows))
		}
		obj := NewObject()
		for _, field := range schema {
			k := p.peek().Kind
			if k == TokenNewline || k == TokenEOF {
				break
			}
			v, err := p.parseValue()
			if err != nil {
				return Value{}, err
			}
			obj.Set(field, v)
		}
		rows = append(rows, ObjectValue(obj))
	}
	return Array(rows), nil
}

func (p *Parser) parseListRows(n int, start Token) (Value, error) {
	vals := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		p.skipNewlines()
		if p.atEnd() {
			return Value{}, newSyntaxError(p.pos_(start), "array declared length %d but only %d values present", n, len(vals))
		}
		if p.peek().Kind == TokenListItem {
			p.advance()
		}
		v, err := p.parseValue()
		if err != nil {
			return Value{}, err
		}
		vals = append(vals, v)
	}
	return Array(vals), nil
}
