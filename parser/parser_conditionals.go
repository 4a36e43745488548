/*
File    : luma/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/lexer"
)

// parseIf parses:
//
//	if cond then block [elseif cond then block]* [else block] end
func (p *Parser) parseIf() (ast.Stmt, error) {
	p.advance() // consume 'if'

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.THEN_KEY); err != nil {
		return nil, err
	}

	body, err := p.parseBlockUntil(lexer.END_KEY, lexer.ELSEIF_KEY, lexer.ELSE_KEY)
	if err != nil {
		return nil, err
	}

	var elseIfs []ast.ElseIfArm
	for p.CurrToken.Type == lexer.ELSEIF_KEY {
		p.advance()

		elseIfCond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if err := p.expectAdvance(lexer.THEN_KEY); err != nil {
			return nil, err
		}

		elseIfBody, err := p.parseBlockUntil(lexer.END_KEY, lexer.ELSEIF_KEY, lexer.ELSE_KEY)
		if err != nil {
			return nil, err
		}

		elseIfs = append(elseIfs, ast.ElseIfArm{Cond: elseIfCond, Body: elseIfBody})
	}

	var elseBody []ast.Stmt
	if p.CurrToken.Type == lexer.ELSE_KEY {
		p.advance()
		elseBody, err = p.parseBlockUntil(lexer.END_KEY)
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectAdvance(lexer.END_KEY); err != nil {
		return nil, err
	}

	return &ast.If{Cond: cond, Body: body, ElseIfs: elseIfs, Else: elseBody}, nil
}
