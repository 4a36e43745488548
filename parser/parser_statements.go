/*
File    : luma/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/lexer"
)

// parseLocalDecl parses: local name = expr
func (p *Parser) parseLocalDecl() (ast.Stmt, error) {
	p.advance() // consume 'local'

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.ASSIGN_OP); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.LocalDecl{Name: name, Value: value}, nil
}

// parseAssign parses: name = expr
func (p *Parser) parseAssign() (ast.Stmt, error) {
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expectAdvance(lexer.ASSIGN_OP); err != nil {
		return nil, err
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Assign{Name: name, Value: value}, nil
}

// parseReturn parses: return expr
func (p *Parser) parseReturn() (ast.Stmt, error) {
	p.advance() // consume 'return'

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &ast.Return{X: value}, nil
}
