/*
File    : luma/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/lexer"
)

// parseWhile parses: while cond do block end
func (p *Parser) parseWhile() (ast.Stmt, error) {
	p.advance() // consume 'while'

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.DO_KEY); err != nil {
		return nil, err
	}

	body, err := p.parseBlockUntil(lexer.END_KEY)
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.END_KEY); err != nil {
		return nil, err
	}

	return &ast.While{Cond: cond, Body: body}, nil
}

// parseNumericFor parses: for name = start, end[, step] do block end
func (p *Parser) parseNumericFor() (ast.Stmt, error) {
	p.advance() // consume 'for'

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.ASSIGN_OP); err != nil {
		return nil, err
	}

	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.COMMA_DELIM); err != nil {
		return nil, err
	}

	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	var step ast.Expr = &ast.NumberLiteral{Value: 1}
	if p.CurrToken.Type == lexer.COMMA_DELIM {
		p.advance()
		step, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectAdvance(lexer.DO_KEY); err != nil {
		return nil, err
	}

	body, err := p.parseBlockUntil(lexer.END_KEY)
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.END_KEY); err != nil {
		return nil, err
	}

	return &ast.NumericFor{Name: name, Start: start, End: end, Step: step, Body: body}, nil
}

// parseRepeatUntil parses: repeat block until cond
//
// The block runs at least once; the loop exits once cond evaluates true.
func (p *Parser) parseRepeatUntil() (ast.Stmt, error) {
	p.advance() // consume 'repeat'

	body, err := p.parseBlockUntil(lexer.UNTIL_KEY)
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.UNTIL_KEY); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.RepeatUntil{Body: body, Cond: cond}, nil
}
