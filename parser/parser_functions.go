/*
File    : luma/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/lexer"
)

// parseFuncDecl parses: function name(params) block end
func (p *Parser) parseFuncDecl() (ast.Stmt, error) {
	p.advance() // consume 'function'

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}

	var params []string
	for p.CurrToken.Type == lexer.IDENTIFIER_ID {
		param, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, param)

		if p.CurrToken.Type == lexer.COMMA_DELIM {
			p.advance()
		} else {
			break
		}
	}

	if err := p.expectAdvance(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBlockUntil(lexer.END_KEY)
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.END_KEY); err != nil {
		return nil, err
	}

	return &ast.FuncDecl{Name: name, Params: params, Body: body}, nil
}
