package cgrammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_KeywordVsPredefinedConstant(t *testing.T) {
	tokens, _, diags := Lex([]byte("true false nullptr int"), DefaultLexOptions())
	require.Empty(t, diags)

	require.Len(t, tokens.Tokens, 5) // 4 + EOF
	assert.Equal(t, TokenConstant, tokens.Tokens[0].Kind)
	assert.Equal(t, TokenConstant, tokens.Tokens[1].Kind)
	assert.Equal(t, TokenConstant, tokens.Tokens[2].Kind)
	assert.Equal(t, TokenKeyword, tokens.Tokens[3].Kind)

	c0 := tokens.Tokens[0].Payload.(*Constant)
	assert.Equal(t, ConstantPredefined, c0.Kind)
	assert.Equal(t, PredefinedTrue, c0.Predefined)
}

func TestLex_BalancedGroups(t *testing.T) {
	tokens, _, diags := Lex([]byte("f(a, b[2]);"), DefaultLexOptions())
	require.Empty(t, diags)

	// tokens: f ( a , b [ 2 ] ) ; EOF
	openParen := 1
	close, ok := tokens.Groups[openParen]
	require.True(t, ok)
	assert.Equal(t, TokenPunctuator, tokens.Tokens[close].Kind)
	assert.Equal(t, PRParen, tokens.Tokens[close].Payload.(PunctuatorKind))
}

func TestLex_UnmatchedBracketClosedAtEOF(t *testing.T) {
	tokens, _, diags := Lex([]byte("int f(void) {"), DefaultLexOptions())
	require.NotEmpty(t, diags)
	require.NotEmpty(t, tokens.Groups)
}

func TestLex_DigitSeparatorsStripped(t *testing.T) {
	tokens, _, diags := Lex([]byte("1'000'000"), DefaultLexOptions())
	require.Empty(t, diags)
	require.Len(t, tokens.Tokens, 2)
	c := tokens.Tokens[0].Payload.(*Constant)
	assert.Equal(t, uint64(1000000), c.IntValue.Lo)
}

func TestLex_StringPrefixDisambiguation(t *testing.T) {
	tokens, _, diags := Lex([]byte(`u8"hi" L'x' un8 "y"`), DefaultLexOptions())
	require.Empty(t, diags)

	assert.Equal(t, TokenStringLiteral, tokens.Tokens[0].Kind)
	assert.Equal(t, TokenConstant, tokens.Tokens[1].Kind)
	// "un8" is not a recognized prefix, so it lexes as its own identifier
	// token followed by a separate unprefixed string literal.
	assert.Equal(t, TokenIdentifier, tokens.Tokens[2].Kind)
	assert.Equal(t, TokenStringLiteral, tokens.Tokens[3].Kind)
}

func TestLex_MaxIntegerConstantRetainsAllBits(t *testing.T) {
	// spec.md §8 boundary property: the largest C23 integer constant
	// (2^128 - 1) must retain every bit, not just the low 64.
	tokens, _, diags := Lex([]byte("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"), DefaultLexOptions())
	require.Empty(t, diags)
	c := tokens.Tokens[0].Payload.(*Constant)
	assert.Equal(t, ^uint64(0), c.IntValue.Hi)
	assert.Equal(t, ^uint64(0), c.IntValue.Lo)
}

func TestLex_EscapeSequences(t *testing.T) {
	tokens, _, diags := Lex([]byte(`"a\tb\x41\101"`), DefaultLexOptions())
	require.Empty(t, diags)
	require.Equal(t, TokenStringLiteral, tokens.Tokens[0].Kind)
	frag := tokens.Tokens[0].Payload.(*StringFragment)
	assert.Equal(t, "a\tbAA", frag.Value)
}
