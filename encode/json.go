package encode

import (
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/signadot/schemer/ir"
)

// Instance returns the data described by e: its assigned value, or the
// zero value of its type, with objects as [*Object] and arrays as
// []any.
func Instance(e *ir.Element) any {
	switch e.Kind {
	case ir.StringKind:
		return values(e.String.Value())
	case ir.IntegerKind:
		return values(e.Integer.Value())
	case ir.FloatingKind:
		return values(e.Floating.Value())
	case ir.BooleanKind:
		return values(e.Boolean.Value())
	case ir.ObjectKind:
		o := e.Object
		if !o.IsArray() {
			return fieldsInstance(o.Data())
		}
		res := []any{}
		for v := range o.Values() {
			res = append(res, fieldsInstance(v.Data()))
		}
		return res
	case ir.AnyKind:
		a := e.Any
		if !a.IsArray() {
			return nullableInstance(a.Value().Value())
		}
		res := []any{}
		for _, v := range a.Value().Values() {
			res = append(res, nullableInstance(v))
		}
		return res
	}
	return nil
}

func nullableInstance(e *ir.Element) any {
	if e == nil {
		return nil
	}
	return Instance(e)
}

func values[T any](p *ir.PossibleArray[T]) any {
	if !p.IsArray() {
		return p.Value()
	}
	res := make([]any, 0, p.Len())
	for _, v := range p.Values() {
		res = append(res, v)
	}
	return res
}

// ModuleInstance returns the instance of m as an object holding one
// entry per top level field.
func ModuleInstance(m *ir.Module) *Object {
	return fieldsInstance(m.Fields())
}

func fieldsInstance(fs *ir.Fields) *Object {
	res := &Object{}
	for n, f := range fs.All() {
		res.Set(n, Instance(f.Value()))
	}
	return res
}

// fieldInstance wraps the instance of a named field in an object
// holding its name.
func fieldInstance(f *ir.FieldType) any {
	v := Instance(f.Value())
	if f.Name() == "" {
		return v
	}
	res := &Object{}
	res.Set(f.Name(), v)
	return res
}

func encodeJSON(w io.Writer, v any, es *EncState) error {
	var (
		d   []byte
		err error
	)
	if es.indent == 0 {
		d, err = json.Marshal(v)
	} else {
		d, err = json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
	}
	if err != nil {
		return err
	}
	return writeBytes(w, append(d, '\n'))
}

func encodeYAML(w io.Writer, v any, es *EncState) error {
	opts := []yaml.EncodeOption{}
	if es.indent == 0 {
		opts = append(opts, yaml.Flow(true))
	} else {
		opts = append(opts, yaml.Indent(es.indent))
	}
	d, err := yaml.MarshalWithOptions(yamlValue(v), opts...)
	if err != nil {
		return err
	}
	return writeBytes(w, d)
}
