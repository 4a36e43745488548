/*
File    : luma/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTestCase represents one Tokenize test case: source text in, the
// expected flat token list out.
type TestTestCase struct {
	Input          string
	ExpectedTokens []Token
}

func TestLexer_Tokenize(t *testing.T) {
	tests := []TestTestCase{
		{
			Input: `local x = 1 + 2`,
			ExpectedTokens: []Token{
				NewToken(LOCAL_KEY, "local"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "1"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
			},
		},
		{
			Input: `x == 1 ~= 2 <= 3 >= 4 .. "s"`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(EQ_OP, "=="),
				NewToken(NUMBER_LIT, "1"),
				NewToken(NE_OP, "~="),
				NewToken(NUMBER_LIT, "2"),
				NewToken(LE_OP, "<="),
				NewToken(NUMBER_LIT, "3"),
				NewToken(GE_OP, ">="),
				NewToken(NUMBER_LIT, "4"),
				NewToken(CONCAT_OP, ".."),
				NewToken(STRING_LIT, "s"),
			},
		},
		{
			Input: `if x then return true else return false end`,
			ExpectedTokens: []Token{
				NewToken(IF_KEY, "if"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(THEN_KEY, "then"),
				NewToken(RETURN_KEY, "return"),
				NewToken(BOOL_LIT, "true"),
				NewToken(ELSE_KEY, "else"),
				NewToken(RETURN_KEY, "return"),
				NewToken(BOOL_LIT, "false"),
				NewToken(END_KEY, "end"),
			},
		},
		{
			Input: "-- a comment\nlocal y = nil",
			ExpectedTokens: []Token{
				NewToken(LOCAL_KEY, "local"),
				NewToken(IDENTIFIER_ID, "y"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NIL_LIT, "nil"),
			},
		},
		{
			Input: `t[1] = { 1, 2 }`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "t"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(NUMBER_LIT, "1"),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(ASSIGN_OP, "="),
				NewToken(LEFT_BRACE, "{"),
				NewToken(NUMBER_LIT, "1"),
				NewToken(COMMA_DELIM, ","),
				NewToken(NUMBER_LIT, "2"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		tokens, err := lex.Tokenize()
		assert.NoError(t, err)
		assert.Equal(t, len(test.ExpectedTokens), len(tokens))
		for i, expected := range test.ExpectedTokens {
			assert.Equal(t, expected.Type, tokens[i].Type)
			assert.Equal(t, expected.Literal, tokens[i].Literal)
		}
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"abc`)
	_, err := lex.Tokenize()
	assert.Error(t, err)
}

func TestLexer_InvalidTilde(t *testing.T) {
	lex := NewLexer(`~x`)
	_, err := lex.Tokenize()
	assert.Error(t, err)
}
