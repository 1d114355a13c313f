package photon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenKindCategories(t *testing.T) {
	cases := []struct {
		kind                                                                       TokenKind
		special, literal, identifier, keyword, operator, delimiter, punctuation bool
	}{
		{kind: Eof, special: true},
		{kind: Newline, special: true},
		{kind: IntegerLiteral, literal: true},
		{kind: BoolLiteral, literal: true},
		{kind: Identifier, identifier: true},
		{kind: KwFn, keyword: true},
		{kind: KwNull, keyword: true},
		{kind: Plus, operator: true},
		{kind: RightShiftAssign, operator: true},
		{kind: LeftParen, delimiter: true},
		{kind: RightBracket, delimiter: true},
		{kind: Comma, punctuation: true},
		{kind: Dot, punctuation: true},
	}

	for _, c := range cases {
		assert.Equal(t, c.special, c.kind.IsSpecial(), c.kind)
		assert.Equal(t, c.literal, c.kind.IsLiteral(), c.kind)
		assert.Equal(t, c.identifier, c.kind.IsIdentifier(), c.kind)
		assert.Equal(t, c.keyword, c.kind.IsKeyword(), c.kind)
		assert.Equal(t, c.operator, c.kind.IsOperator(), c.kind)
		assert.Equal(t, c.delimiter, c.kind.IsDelimiter(), c.kind)
		assert.Equal(t, c.punctuation, c.kind.IsPunctuation(), c.kind)
	}
}

func TestTokenKindString(t *testing.T) {
	assert.Equal(t, "fn", KwFn.String())
	assert.Equal(t, "<<=", LeftShiftAssign.String())
	assert.Equal(t, "Eof", Eof.String())
	assert.Equal(t, "Unknown", TokenKind(199).String())
}

func TestTokenValueVariants(t *testing.T) {
	assert.Equal(t, ValueNone, NoValue().Kind())

	v := IntValue(-7)
	assert.Equal(t, ValueInt, v.Kind())
	assert.Equal(t, int64(-7), v.Int())

	f := FloatValue(2.5)
	assert.Equal(t, ValueFloat, f.Kind())
	assert.Equal(t, 2.5, f.Float())

	s := TextValue("photon")
	assert.Equal(t, ValueText, s.Kind())
	assert.Equal(t, "photon", s.Text())

	b := BoolValue(true)
	assert.Equal(t, ValueBool, b.Kind())
	assert.True(t, b.Bool())
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: IntegerLiteral, Value: IntValue(42)}
	assert.Equal(t, "IntegerLiteral(42)", tok.String())

	tok = Token{Kind: Identifier, Value: TextValue("x")}
	assert.Equal(t, `Identifier("x")`, tok.String())

	tok = Token{Kind: Arrow}
	assert.Equal(t, "->", tok.String())
}
