package neon

import "strings"

// needsQuoting implements spec.md section 4.5's quoting-trigger list.
func needsQuoting(s string, delimiter rune) bool {
	if s == "" {
		return true
	}
	if strings.ContainsAny(s, ":\"\\\n\r\t{}") {
		return true
	}
	if delimiter != ' ' && strings.ContainsRune(s, delimiter) {
		return true
	}
	if strings.HasPrefix(s, " ") || strings.HasSuffix(s, " ") {
		return true
	}
	if s == "T" || s == "F" || s == "N" {
		return true
	}
	if isNumberLiteral(s) {
		return true
	}
	switch s[0] {
	case '#', '@', '$', '~', '^', '>', '-':
		return true
	}
	return false
}

// quoteString renders s as a quoted NEON string literal, escaping
// backslash, double-quote, newline, carriage return, and tab, in that
// order (spec.md section 4.5).
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// unquoteEscapes reverses quoteString's escaping of a raw quoted-string
// body (without the surrounding quotes). Unknown escape characters pass
// through verbatim after the backslash, per spec.md section 4.1 item 3.
func unquoteEscapes(body string) string {
	var b strings.Builder
	b.Grow(len(body))
	escaped := false
	for _, r := range body {
		if escaped {
			switch r {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteRune(r)
			}
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// encodeUnquotedString replaces internal spaces with underscores for the
// unquoted-string wire form.
func encodeUnquotedString(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}

// decodeUnquotedString reverses encodeUnquotedString.
func decodeUnquotedString(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// encodeKey renders an object key, applying field abbreviation when
// requested (spec.md section 4.3's "Key encoding"). A key is quoted only
// when it contains ':', '"', '\', a newline, or a brace; the other
// quoting triggers of needsQuoting do not apply to keys.
func encodeKey(key string, abbreviate bool) string {
	if abbreviate {
		key = AbbreviateField(key)
	}
	if strings.ContainsAny(key, ":\"\\\n{}") {
		return quoteString(key)
	}
	return encodeUnquotedString(key)
}
