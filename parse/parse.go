package parse

import (
	"github.com/signadot/schemer/debug"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/token"
)

// Parse parses a single field from d. Input remaining after the field
// is an error.
func Parse(d []byte, opts ...ParseOption) (*ir.FieldType, error) {
	p, err := newParser(d, opts...)
	if err != nil {
		return nil, err
	}
	f, err := p.ParseField()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.unexpected("end of input")
	}
	return f, nil
}

// ParseString is [Parse] on a string.
func ParseString(s string, opts ...ParseOption) (*ir.FieldType, error) {
	return Parse([]byte(s), opts...)
}

// ParseModule parses the fields in d, optionally separated by ';' or
// ',', into a module called name.
func ParseModule(d []byte, name string, opts ...ParseOption) (*ir.Module, error) {
	p, err := newParser(d, opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseModule(name)
}

// ParseModule parses fields until the end of input.
func (p *Parser) ParseModule(name string) (*ir.Module, error) {
	m := ir.NewModule(name)
	for !p.atEnd() {
		f, pos, err := p.parseField()
		if err != nil {
			return nil, err
		}
		if !m.Add(f) {
			return nil, &DuplicateFieldError{Name: f.Name(), Pos: pos}
		}
		p.expect(isSep)
	}
	return m, nil
}

func newParser(d []byte, opts ...ParseOption) (*Parser, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Lex() {
		for i := range toks {
			debug.Logf("%s %q\n", toks[i].Info(), toks[i].String())
		}
	}
	return NewParser(toks, opts...), nil
}
