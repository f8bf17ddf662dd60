package parse

import (
	"github.com/signadot/schemer/token"
)

// Parser is a recursive descent parser over a token slice.
//
// current is the last consumed token and next the one after it; indices
// outside the slice resolve to a synthetic end of input token, so
// lookahead never needs a bounds check.
type Parser struct {
	toks    []token.Token
	current int
	next    int
	none    token.Token
	eof     token.Token
	opts    *parseOpts
}

type mark struct {
	current, next int
}

func NewParser(toks []token.Token, opts ...ParseOption) *Parser {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	end := token.Pos{Line: 1, Col: 1}
	if n := len(toks); n != 0 {
		last := &toks[n-1]
		end = last.Pos
		end.Offset += len(last.Literal)
		end.Col += len([]rune(last.Literal))
	}
	return &Parser{
		toks:    toks,
		current: -1,
		next:    0,
		eof:     token.Token{Type: token.TEOF, Pos: end},
		opts:    pOpts,
	}
}

func (p *Parser) at(i int) *token.Token {
	switch {
	case i < 0:
		return &p.none
	case i >= len(p.toks):
		return &p.eof
	}
	return &p.toks[i]
}

// cur returns the last consumed token.
func (p *Parser) cur() *token.Token {
	return p.at(p.current)
}

// peek returns the next unconsumed token.
func (p *Parser) peek() *token.Token {
	return p.at(p.next)
}

// advance consumes the next token, reporting whether another one
// remains after it.
func (p *Parser) advance() bool {
	p.current = p.next
	if p.next >= len(p.toks) {
		return false
	}
	p.next++
	return true
}

// expect consumes the next token if f accepts it.
func (p *Parser) expect(f token.Pred) bool {
	if !f(p.peek()) {
		return false
	}
	p.advance()
	return true
}

// atEnd reports whether all tokens were consumed.
func (p *Parser) atEnd() bool {
	return p.next >= len(p.toks)
}

func (p *Parser) backup() mark {
	return mark{current: p.current, next: p.next}
}

func (p *Parser) restore(m mark) {
	p.current, p.next = m.current, m.next
}

func (p *Parser) unexpected(expected string) error {
	tok := p.peek()
	return &UnexpectedTokenError{Expected: expected, Found: *tok, Pos: tok.Pos}
}

func (p *Parser) constraint(kind ConstraintKind, value string) error {
	return &ConstraintError{Kind: kind, Value: value, Pos: p.cur().Pos}
}

var (
	isColon     = token.IsSpecial(token.SColon)
	isEqual     = token.IsSpecial(token.SEqual)
	isAssign    = token.Or(isEqual, isColon)
	isComma     = token.IsSpecial(token.SComma)
	isSemicolon = token.IsSpecial(token.SSemicolon)
	isSep       = token.Or(isComma, isSemicolon)
	isLBrace    = token.IsSpecial(token.SLBrace)
	isRBrace    = token.IsSpecial(token.SRBrace)
	isLBracket  = token.IsSpecial(token.SLBracket)
	isRBracket  = token.IsSpecial(token.SRBracket)
	isLParen    = token.IsSpecial(token.SLParen)
	isRParen    = token.IsSpecial(token.SRParen)
	isInterval  = token.IsSpecial(token.SInterval)
	isEnum      = token.IsSpecial(token.SEnum)
)

// readName consumes a name in an object literal or option list: an
// identifier, a quoted string or any word-like keyword.
func (p *Parser) readName() (string, token.Pos, bool) {
	tok := p.peek()
	switch {
	case tok.Type == token.TIdent, tok.Type == token.TString:
		p.advance()
		return tok.Str, tok.Pos, true
	case tok.IsWord():
		p.advance()
		return tok.Word(), tok.Pos, true
	}
	return "", tok.Pos, false
}

// readFieldName consumes the name of a field declaration, if there is
// one. Keywords are read as names only when the declaration continues
// with options or with ':' and a type.
func (p *Parser) readFieldName() (string, bool) {
	tok := p.peek()
	switch {
	case tok.Type == token.TIdent, tok.Type == token.TString:
		p.advance()
		return tok.Str, true
	case tok.IsWord():
		after := p.at(p.next + 1)
		if isLParen(after) || (isColon(after) && token.IsType(p.at(p.next+2))) {
			p.advance()
			return tok.Word(), true
		}
	}
	return "", false
}
