/*
File    : luma/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements Luma's recursive-descent parser: one token of
lookahead, one function per grammar production, fail-fast on the first
syntax error (no resynchronization — the same contract the lexer keeps).
*/
package parser

import (
	"fmt"

	"github.com/lumalang/luma/ast"
	"github.com/lumalang/luma/lexer"
)

// Parser walks a flat token stream and builds the AST.
type Parser struct {
	tokens    []lexer.Token
	pos       int
	CurrToken lexer.Token
	PeekToken lexer.Token
}

// NewParser tokenizes source and returns a Parser positioned at its first
// token, or the lexical error that prevented tokenization.
func NewParser(source string) (*Parser, error) {
	lex := lexer.NewLexer(source)
	tokens, err := lex.Tokenize()
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, lexer.NewToken(lexer.EOF_TYPE, "EOF"))

	p := &Parser{tokens: tokens}
	p.CurrToken = p.tokens[0]
	p.PeekToken = p.peekAt(1)
	return p, nil
}

func (p *Parser) peekAt(i int) lexer.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// advance moves one token forward.
func (p *Parser) advance() {
	p.pos++
	p.CurrToken = p.peekAt(p.pos)
	p.PeekToken = p.peekAt(p.pos + 1)
}

// expectAdvance checks CurrToken against tt, advances past it on success,
// and returns a descriptive error otherwise.
func (p *Parser) expectAdvance(tt lexer.TokenType) error {
	if p.CurrToken.Type != tt {
		return fmt.Errorf("[%d:%d] PARSE ERROR: expected '%s', got '%s'",
			p.CurrToken.Line, p.CurrToken.Column, tt, p.CurrToken.Type)
	}
	p.advance()
	return nil
}

// parseIdentifier consumes an Identifier token and returns its literal.
func (p *Parser) parseIdentifier() (string, error) {
	if p.CurrToken.Type != lexer.IDENTIFIER_ID {
		return "", fmt.Errorf("[%d:%d] PARSE ERROR: expected identifier, got '%s'",
			p.CurrToken.Line, p.CurrToken.Column, p.CurrToken.Type)
	}
	name := p.CurrToken.Literal
	p.advance()
	return name, nil
}

// Parse parses the entire token stream into a sequence of top-level
// statements. Parsing stops and returns the first error encountered —
// Luma's parser does not attempt to recover and keep going, matching the
// lexer's own no-error-recovery contract.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var statements []ast.Stmt
	for p.CurrToken.Type != lexer.EOF_TYPE {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// blockEndTokens lists every keyword that can close a block. It is not
// read by parseBlockUntil, which takes its terminator set as arguments
// from each caller (e.g. if's "end"/"elseif"/"else").
var blockEndTokens = map[lexer.TokenType]bool{
	lexer.END_KEY:    true,
	lexer.ELSEIF_KEY: true,
	lexer.ELSE_KEY:   true,
	lexer.UNTIL_KEY:  true,
}

// parseBlockUntil parses statements until the current token is one of
// ends, without consuming that terminating token.
func (p *Parser) parseBlockUntil(ends ...lexer.TokenType) ([]ast.Stmt, error) {
	endSet := make(map[lexer.TokenType]bool, len(ends))
	for _, e := range ends {
		endSet[e] = true
	}

	var statements []ast.Stmt
	for p.CurrToken.Type != lexer.EOF_TYPE && !endSet[p.CurrToken.Type] {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// parseStatement dispatches on the current token to the statement-family
// parser that owns it.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch p.CurrToken.Type {
	case lexer.LOCAL_KEY:
		return p.parseLocalDecl()
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseNumericFor()
	case lexer.REPEAT_KEY:
		return p.parseRepeatUntil()
	case lexer.FUNCTION_KEY:
		return p.parseFuncDecl()
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.IDENTIFIER_ID:
		if p.PeekToken.Type == lexer.ASSIGN_OP {
			return p.parseAssign()
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: expr}, nil
	default:
		return nil, fmt.Errorf("[%d:%d] PARSE ERROR: unexpected token '%s'",
			p.CurrToken.Line, p.CurrToken.Column, p.CurrToken.Type)
	}
}
