package neon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	ks := make([]TokenKind, len(tokens))
	for i, t := range tokens {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexer_Sigils(t *testing.T) {
	tokens, err := NewLexer("#@^:,").Lex()
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{
		TokenArrayStart, TokenObjectStart, TokenSchemaStart, TokenColon, TokenComma, TokenEOF,
	}, kinds(tokens))
}

func TestLexer_BoolNullShortcuts(t *testing.T) {
	tokens, err := NewLexer("T F N").Lex()
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, TokenBool, tokens[0].Kind)
	assert.Equal(t, "true", tokens[0].Value)
	assert.Equal(t, TokenBool, tokens[1].Kind)
	assert.Equal(t, "false", tokens[1].Value)
	assert.Equal(t, TokenNull, tokens[2].Kind)
	assert.Equal(t, "null", tokens[2].Value)
}

func TestLexer_NegativeNumberNotListItem(t *testing.T) {
	// Regression: '-' must only become a ListItem token when it is not
	// immediately followed by a digit or '.', or "decode(encode(-1))"
	// would strand the sign and drop the digits (see lexer.go's dispatch
	// order comment).
	tokens, err := NewLexer("-1").Lex()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, "-1", tokens[0].Value)
}

func TestLexer_ListItemStillWorks(t *testing.T) {
	tokens, err := NewLexer("- hello").Lex()
	require.NoError(t, err)
	assert.Equal(t, TokenListItem, tokens[0].Kind)
	assert.Equal(t, TokenString, tokens[1].Kind)
	assert.Equal(t, "hello", tokens[1].Value)
}

func TestLexer_QuotedString(t *testing.T) {
	tokens, err := NewLexer(`"a:b\nc"`).Lex()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenString, tokens[0].Kind)
	assert.Equal(t, "a:b\nc", tokens[0].Value)
}

func TestLexer_UnquotedStringUnderscores(t *testing.T) {
	tokens, err := NewLexer("hello_world").Lex()
	require.NoError(t, err)
	assert.Equal(t, "hello world", tokens[0].Value)
}

func TestLexer_UnterminatedString(t *testing.T) {
	_, err := NewLexer(`"no closing quote`).Lex()
	require.Error(t, err)
}

func TestLexer_NumberSuffixes(t *testing.T) {
	tokens, err := NewLexer("1.5K 2M").Lex()
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenNumber, tokens[0].Kind)
	assert.Equal(t, "1500", tokens[0].Value)
	assert.Equal(t, TokenNumber, tokens[1].Kind)
	assert.Equal(t, "2000000", tokens[1].Value)
}

func TestLexer_Newline(t *testing.T) {
	tokens, err := NewLexer("a\nb").Lex()
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{TokenString, TokenNewline, TokenString, TokenEOF}, kinds(tokens))
}
