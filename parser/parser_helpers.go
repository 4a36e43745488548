/*
File    : luma/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/lumalang/luma/lexer"
)

// unexpectedTokenErr formats the standard "unexpected token" diagnostic
// used by every parser function that runs out of productions to try.
func unexpectedTokenErr(tok lexer.Token) error {
	return fmt.Errorf("[%d:%d] PARSE ERROR: unexpected token '%s'", tok.Line, tok.Column, tok.Type)
}

// snapshot captures the parser's position, used by tolerant
// call-argument parsing to try parsing one more argument and roll back
// cleanly if that attempt fails instead of aborting the whole call.
func (p *Parser) snapshot() int {
	return p.pos
}

// restore rewinds the parser to a position captured by snapshot.
func (p *Parser) restore(pos int) {
	p.pos = pos
	p.CurrToken = p.peekAt(p.pos)
	p.PeekToken = p.peekAt(p.pos + 1)
}
