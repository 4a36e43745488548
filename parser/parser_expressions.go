/*
File    : luma/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Expression parsing climbs four precedence bands, from loosest to
tightest:
  - comparison/equality  (== ~= < <= > >=)
  - additive/concat      (+ - ..)
  - multiplicative       (* /)
  - primary              (literals, identifiers, calls, indexing,
    parenthesized expressions, table literals)

All binary operators at every band are left-associative.
*/
package parser

import (
	"strconv"

	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/lexer"
)

var comparisonOps = map[lexer.TokenType]string{
	lexer.EQ_OP: "==",
	lexer.NE_OP: "~=",
	lexer.LT_OP: "<",
	lexer.LE_OP: "<=",
	lexer.GT_OP: ">",
	lexer.GE_OP: ">=",
}

var additiveOps = map[lexer.TokenType]string{
	lexer.PLUS_OP:   "+",
	lexer.MINUS_OP:  "-",
	lexer.CONCAT_OP: "..",
}

var multiplicativeOps = map[lexer.TokenType]string{
	lexer.MUL_OP: "*",
	lexer.DIV_OP: "/",
}

// parseExpression parses the comparison/equality band, the loosest in
// Luma's grammar.
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := comparisonOps[p.CurrToken.Type]
		if !ok {
			break
		}
		p.advance()

		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}

	return left, nil
}

// parseAdditive parses the additive/concatenation band. Concatenation
// (..) sharing this band with +/- is a deliberate placement choice where
// the source grammar left the precedence unspecified — see Design Notes.
func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := additiveOps[p.CurrToken.Type]
		if !ok {
			break
		}
		p.advance()

		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}

	return left, nil
}

// parseMultiplicative parses the multiplicative band.
func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := multiplicativeOps[p.CurrToken.Type]
		if !ok {
			break
		}
		p.advance()

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: op, Right: right}
	}

	return left, nil
}

// parsePrimary parses a primary expression, then applies zero or more
// postfix `[ expr ]` index operators — the latter is a supplement over
// the minimal grammar this was distilled from, which defines table
// indexing as an AST shape but never wires a parse path to it.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	expr, err := p.parsePrimaryBase()
	if err != nil {
		return nil, err
	}

	for p.CurrToken.Type == lexer.LEFT_BRACKET {
		p.advance()
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectAdvance(lexer.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		expr = &ast.Index{Target: expr, Key: key}
	}

	return expr, nil
}

func (p *Parser) parsePrimaryBase() (ast.Expr, error) {
	tok := p.CurrToken

	switch tok.Type {
	case lexer.LEFT_PAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expectAdvance(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.LEFT_BRACE:
		p.advance()
		return p.parseTableLiteral()

	case lexer.NUMBER_LIT:
		p.advance()
		n, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Value: n}, nil

	case lexer.STRING_LIT:
		p.advance()
		return &ast.StringLiteral{Value: tok.Literal}, nil

	case lexer.BOOL_LIT:
		p.advance()
		return &ast.BooleanLiteral{Value: tok.Literal == "true"}, nil

	case lexer.NIL_LIT:
		p.advance()
		return &ast.NilLiteral{}, nil

	case lexer.IDENTIFIER_ID:
		p.advance()
		if p.CurrToken.Type == lexer.LEFT_PAREN {
			p.advance()
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			if err := p.expectAdvance(lexer.RIGHT_PAREN); err != nil {
				return nil, err
			}
			return &ast.Call{Function: tok.Literal, Args: args}, nil
		}
		return &ast.Identifier{Name: tok.Literal}, nil

	default:
		return nil, unexpectedTokenErr(tok)
	}
}

// parseCallArgs parses a comma-separated argument list tolerantly: it
// keeps parsing expressions separated by commas, and simply stops —
// without raising a parse error — the moment the next expression fails to
// parse. The caller is then responsible for requiring the closing
// RIGHT_PAREN, which reports any genuine syntax error.
func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	var args []ast.Expr

	for {
		mark := p.snapshot()
		arg, err := p.parseExpression()
		if err != nil {
			p.restore(mark)
			break
		}
		args = append(args, arg)

		if p.CurrToken.Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}
		break
	}

	return args, nil
}
