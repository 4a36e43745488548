/*
File    : luma/parser/parser_tables.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/lexer"
)

// parseTableLiteral parses a brace-delimited table constructor:
//
//	{ expr, expr, ... }
//
// Elements receive 1-based positional NumberLiteral keys in source
// order; commas between elements are optional separators, skipped rather
// than required, matching the source grammar this was distilled from.
// The opening brace has already been consumed by the caller.
func (p *Parser) parseTableLiteral() (ast.Expr, error) {
	table := &ast.TableLiteral{}
	index := 1

	for p.CurrToken.Type != lexer.RIGHT_BRACE && p.CurrToken.Type != lexer.EOF_TYPE {
		if p.CurrToken.Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}

		element, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		table.Keys = append(table.Keys, &ast.NumberLiteral{Value: float64(index)})
		table.Values = append(table.Values, element)
		index++
	}

	if err := p.expectAdvance(lexer.RIGHT_BRACE); err != nil {
		return nil, err
	}

	return table, nil
}
