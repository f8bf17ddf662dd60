package parse

import (
	"github.com/signadot/schemer/debug"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/token"
)

// ParseField parses one field declaration:
//
//	[ name ] [ options ] ':' type ...
//
// The colon is only required after a name.
func (p *Parser) ParseField() (*ir.FieldType, error) {
	f, _, err := p.parseField()
	return f, err
}

func (p *Parser) parseField() (*ir.FieldType, token.Pos, error) {
	start := p.peek().Pos
	name, named := p.readFieldName()
	opts, err := p.readOptions()
	if err != nil {
		return nil, start, err
	}
	if named && !p.expect(isColon) {
		return nil, start, p.unexpected(":")
	}
	if !p.expect(token.IsType) {
		return nil, start, p.unexpected("type name")
	}
	var e *ir.Element
	switch p.cur().Name {
	case token.TypeString:
		e, err = p.parseString()
	case token.TypeInteger:
		e, err = p.parseInteger()
	case token.TypeFloating:
		e, err = p.parseFloating()
	case token.TypeBoolean:
		e, err = p.parseBoolean()
	case token.TypeObject:
		e, err = p.parseObject()
	case token.TypeAny:
		e, err = p.parseAny()
	}
	if err != nil {
		return nil, start, err
	}
	f := ir.NewField(name, e, opts)
	if p.opts.positions != nil {
		p.opts.positions[f] = start
	}
	if debug.Parse() {
		debug.Logf("parsed field %q at %s: %v\n", name, start, f)
	}
	return f, start, nil
}

// readArraySuffix reads an optional "[]".
func (p *Parser) readArraySuffix(t interface{ MakeArray() }) error {
	if !p.expect(isLBracket) {
		return nil
	}
	if !p.expect(isRBracket) {
		return p.unexpected("]")
	}
	t.MakeArray()
	return nil
}

// readDefault reads an optional "= value" or ": value".
func (p *Parser) readDefault(r reader) error {
	if !p.expect(isAssign) {
		return nil
	}
	return p.readValue(r)
}

// readValue reads a literal for r: a single value, or a bracketed list
// if r's target is an array.
func (p *Parser) readValue(r reader) error {
	if !r.isArray() {
		if !p.expect(r.check) {
			return p.unexpected(r.expected())
		}
		return r.read(p)
	}
	if !p.expect(isLBracket) {
		return p.unexpected("[")
	}
	return p.readArray(r)
}

// readArray reads array elements after the opening bracket.
func (p *Parser) readArray(r reader) error {
	r.assign()
	for p.expect(r.check) {
		if err := r.read(p); err != nil {
			return err
		}
		p.expect(isComma)
	}
	if !p.expect(isRBracket) {
		return p.unexpected("] or " + r.expected())
	}
	return nil
}

func (p *Parser) tryReadInterval(r intervalReader) (bool, error) {
	switch {
	case p.expect(r.check):
		if err := r.setMin(p); err != nil {
			return true, err
		}
		if !p.expect(isInterval) {
			return true, p.unexpected("..")
		}
		if p.expect(r.check) {
			if err := r.setMax(p); err != nil {
				return true, err
			}
		}
	case p.expect(isInterval):
		if !p.expect(r.check) {
			return true, p.unexpected(r.expected())
		}
		if err := r.setMax(p); err != nil {
			return true, err
		}
	default:
		return false, nil
	}
	return true, r.checkInterval(p)
}

func (p *Parser) tryReadEnum(r enumReader) (bool, error) {
	if !p.expect(isEnum) {
		return false, nil
	}
	if !p.expect(isLBrace) {
		return true, p.unexpected("{")
	}
	for p.expect(r.check) {
		if err := r.addEnum(p); err != nil {
			return true, err
		}
		p.expect(isComma)
	}
	if !p.expect(isRBrace) {
		return true, p.unexpected("} or " + r.expected())
	}
	return true, nil
}

func (p *Parser) parseString() (*ir.Element, error) {
	t := ir.NewString()
	if err := p.readArraySuffix(t); err != nil {
		return nil, err
	}
	r := &stringReader{t: t}
	if _, err := p.tryReadEnum(r); err != nil {
		return nil, err
	}
	if err := p.readDefault(r); err != nil {
		return nil, err
	}
	return ir.StringElement(t), nil
}

func (p *Parser) parseBoolean() (*ir.Element, error) {
	t := ir.NewBoolean()
	if err := p.readArraySuffix(t); err != nil {
		return nil, err
	}
	if err := p.readDefault(&booleanReader{t: t}); err != nil {
		return nil, err
	}
	return ir.BooleanElement(t), nil
}

func (p *Parser) parseInteger() (*ir.Element, error) {
	t := ir.NewInteger()
	if err := p.parseNumber(t, integerReader(t)); err != nil {
		return nil, err
	}
	return ir.IntegerElement(t), nil
}

func (p *Parser) parseFloating() (*ir.Element, error) {
	t := ir.NewFloating()
	if err := p.parseNumber(t, floatingReader(t)); err != nil {
		return nil, err
	}
	return ir.FloatingElement(t), nil
}

// parseNumber reads the array suffix, then intervals and enums in any
// number until neither follows, then the default.
func (p *Parser) parseNumber(t interface{ MakeArray() }, r interface {
	intervalReader
	enumReader
}) error {
	if err := p.readArraySuffix(t); err != nil {
		return err
	}
	for {
		ok, err := p.tryReadInterval(r)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		ok, err = p.tryReadEnum(r)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return p.readDefault(r)
}

func (p *Parser) parseObject() (*ir.Element, error) {
	o := ir.NewObject()
	if err := p.readArraySuffix(o); err != nil {
		return nil, err
	}
	if !p.expect(isLBrace) {
		return nil, p.unexpected("{")
	}
	for !p.expect(isRBrace) {
		f, pos, err := p.parseField()
		if err != nil {
			return nil, err
		}
		if !o.AddField(f) {
			return nil, &DuplicateFieldError{Name: f.Name(), Pos: pos}
		}
		p.expect(isSep)
	}
	if err := p.readDefault(&objectReader{t: o}); err != nil {
		return nil, err
	}
	return ir.ObjectElement(o), nil
}

// parseAny reads the value an any field requires.
func (p *Parser) parseAny() (*ir.Element, error) {
	if !p.expect(isAssign) {
		return nil, p.unexpected("= or :")
	}
	e, err := p.guessElement()
	if err != nil {
		return nil, err
	}
	return ir.AnyElement(ir.AnyOf(e)), nil
}

func (p *Parser) readOptions() (*ir.Options, error) {
	opts := ir.NewOptions()
	if !p.expect(isLParen) {
		return opts, nil
	}
	for !p.expect(isRParen) {
		name, _, ok := p.readName()
		if !ok {
			return nil, p.unexpected("ident, string or )")
		}
		if p.expect(isAssign) {
			e, err := p.guessElement()
			if err != nil {
				return nil, err
			}
			opts.Set(name, nullable(e))
		} else {
			opts.SetFlag(name)
		}
		p.expect(isComma)
	}
	return opts, nil
}

// nullable wraps a guessed null as an any element.
func nullable(e *ir.Element) *ir.Element {
	if e == nil {
		return ir.AnyElement(ir.AnyOf(nil))
	}
	return e
}

// objectReader reads object literals directed by the object's field
// declarations.
type objectReader struct {
	t *ir.ObjectType
}

func (r *objectReader) check(t *token.Token) bool { return isLBrace(t) }
func (r *objectReader) expected() string          { return "{" }
func (r *objectReader) isArray() bool             { return r.t.IsArray() }
func (r *objectReader) assign()                   { r.t.Assign() }

func (r *objectReader) read(p *Parser) error {
	v, err := p.readObjectLiteral(r.t)
	if err != nil {
		return err
	}
	r.t.Add(v)
	return nil
}

// readObjectLiteral reads the fields of a literal after its opening
// brace. Each literal starts from a copy of the schema's declarations;
// declared fields are read against a constraint-preserving template,
// undeclared ones are inferred.
func (p *Parser) readObjectLiteral(schema *ir.ObjectType) (*ir.ObjectType, error) {
	res := schema.Instance()
	seen := map[string]bool{}
	for !p.expect(isRBrace) {
		name, pos, ok := p.readName()
		if !ok {
			return nil, p.unexpected("ident, string or }")
		}
		if seen[name] {
			return nil, &DuplicateFieldError{Name: name, Pos: pos}
		}
		seen[name] = true
		decl, declared := schema.Field(name)
		switch {
		case declared && decl.Value().Kind == ir.AnyKind:
			if !p.expect(isAssign) {
				return nil, p.unexpected(": or =")
			}
			e, err := p.guessElement()
			if err != nil {
				return nil, err
			}
			res.Fields().Put(ir.NewField(name, ir.AnyElement(ir.AnyOf(e)), decl.Options().Clone()))
		case declared:
			if !p.expect(isAssign) {
				return nil, p.unexpected(": or =")
			}
			val := decl.Value().Template()
			if err := p.readValue(readerFor(val)); err != nil {
				return nil, err
			}
			res.Fields().Put(ir.NewField(name, val, decl.Options().Clone()))
		default:
			if p.opts.strict || !p.expect(isAssign) {
				return nil, &UnresolvedFieldError{Name: name, Pos: pos}
			}
			e, err := p.guessElement()
			if err != nil {
				return nil, err
			}
			res.Fields().Put(ir.NewField(name, nullable(e), nil))
		}
		p.expect(isSep)
	}
	return res, nil
}
