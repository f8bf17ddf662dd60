package parse

import (
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/token"
)

// guessElement reads a literal without a schema, inferring its kind
// from its first token. null yields a nil element.
func (p *Parser) guessElement() (*ir.Element, error) {
	tok := p.peek()
	switch tok.Type {
	case token.TInteger:
		return p.guessScalar(ir.IntegerElement(ir.NewInteger()))
	case token.TFloating:
		return p.guessScalar(ir.FloatingElement(ir.NewFloating()))
	case token.TBoolean:
		return p.guessScalar(ir.BooleanElement(ir.NewBoolean()))
	case token.TString:
		return p.guessScalar(ir.StringElement(ir.NewString()))
	case token.TSpecial:
		switch tok.Special {
		case token.SLBrace:
			p.advance()
			o, err := p.guessObject()
			if err != nil {
				return nil, err
			}
			return ir.ObjectElement(o), nil
		case token.SLBracket:
			p.advance()
			return p.readAnyArray()
		case token.SPlus, token.SMinus:
			return p.guessNumber()
		case token.SNull:
			p.advance()
			return nil, nil
		}
	}
	return nil, p.unexpected("valid data")
}

func (p *Parser) guessScalar(e *ir.Element) (*ir.Element, error) {
	if err := p.readValue(readerFor(e)); err != nil {
		return nil, err
	}
	return e, nil
}

// guessNumber looks past a sign to choose between integer and floating.
func (p *Parser) guessNumber() (*ir.Element, error) {
	m := p.backup()
	p.advance()
	next := p.peek().Type
	p.restore(m)
	switch next {
	case token.TInteger:
		return p.guessScalar(ir.IntegerElement(ir.NewInteger()))
	case token.TFloating:
		return p.guessScalar(ir.FloatingElement(ir.NewFloating()))
	}
	p.advance()
	return nil, p.unexpected("number value")
}

// readAnyArray reads a heterogeneous array after its opening bracket.
func (p *Parser) readAnyArray() (*ir.Element, error) {
	res := ir.NewAnyArray()
	res.Assign()
	for !p.expect(isRBracket) {
		e, err := p.guessElement()
		if err != nil {
			return nil, err
		}
		res.Add(e)
		p.expect(isComma)
	}
	return ir.AnyElement(res), nil
}

// guessObject reads an object literal after its opening brace. Its
// fields hold the literal's values, see [ir.ObjectType.Data].
func (p *Parser) guessObject() (*ir.ObjectType, error) {
	res := ir.NewObject()
	res.Assign()
	for !p.expect(isRBrace) {
		name, pos, ok := p.readName()
		if !ok {
			return nil, p.unexpected("ident, string or }")
		}
		// The separator is optional here, unlike in schema-directed
		// literals: `{ x 1 }` reads as `{ x: 1 }`.
		p.expect(isAssign)
		e, err := p.guessElement()
		if err != nil {
			return nil, err
		}
		if !res.AddField(ir.NewField(name, nullable(e), nil)) {
			return nil, &DuplicateFieldError{Name: name, Pos: pos}
		}
		p.expect(isSep)
	}
	return res, nil
}
