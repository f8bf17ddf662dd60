// Package gomap decodes the values of Schemer schemas into Go values.
//
// Each field contributes its value, or the zero value of its type when
// it has none, so a schema with defaults can seed a Go configuration
// struct. Decoding goes through the JSON instance of the schema, so Go
// values are addressed with `json` struct tags.
package gomap

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/signadot/schemer/encode"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/parse"
)

type fromOpts struct {
	parse  []parse.ParseOption
	strict bool
}

type FromOption func(*fromOpts)

// LoadParseOpts passes opts to the parser.
func LoadParseOpts(opts ...parse.ParseOption) FromOption {
	return func(o *fromOpts) { o.parse = append(o.parse, opts...) }
}

// LoadStrict rejects schema fields with no matching Go field.
func LoadStrict(v bool) FromOption { return func(o *fromOpts) { o.strict = v } }

// ModuleFromer is implemented by values which decode themselves from a
// parsed module.
type ModuleFromer interface {
	FromModule(*ir.Module, ...FromOption) error
}

// Load parses d as a module and decodes it into p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	m, err := parse.ParseModule(d, "", do.parse...)
	if err != nil {
		return err
	}
	if x, ok := p.(ModuleFromer); ok {
		return x.FromModule(m, opts...)
	}
	return decode(encode.ModuleInstance(m), p, do)
}

// LoadModule decodes the values of m into p.
func LoadModule(m *ir.Module, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	return decode(encode.ModuleInstance(m), p, do)
}

// LoadElement decodes the value of e into p.
func LoadElement(e *ir.Element, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	return decode(encode.Instance(e), p, do)
}

func decode(v any, p any, do *fromOpts) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	if do.strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(p)
}
