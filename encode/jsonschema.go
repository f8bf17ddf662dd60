package encode

import "github.com/signadot/schemer/ir"

const schemaDraft = "https://json-schema.org/draft/2020-12/schema"

// Option names which carry over to JSON Schema keywords.
const (
	OptRequired    = "required"
	OptReadonly    = "readonly"
	OptDescription = "description"
)

// Schema returns the JSON Schema for the element of a field with the
// given options.
func Schema(e *ir.Element, opts *ir.Options) *Object {
	res := &Object{}
	item := res
	if e.Kind != ir.AnyKind && e.IsArray() {
		res.Set("type", "array")
		item = &Object{}
		res.Set("items", item)
	}
	switch e.Kind {
	case ir.StringKind:
		item.Set("type", "string")
		setEnum(item, e.String.Enum())
	case ir.IntegerKind:
		item.Set("type", "integer")
		setInterval(item, e.Integer.Interval())
		setEnum(item, e.Integer.Enum())
	case ir.FloatingKind:
		item.Set("type", "number")
		setInterval(item, e.Floating.Interval())
		setEnum(item, e.Floating.Enum())
	case ir.BooleanKind:
		item.Set("type", "boolean")
	case ir.ObjectKind:
		setProperties(item, e.Object.Fields())
	}
	if desc, ok := opts.StringValue(OptDescription); ok {
		res.Set("description", desc)
	}
	if opts.Bool(OptReadonly) {
		res.Set("readOnly", true)
	}
	if e.HasValue() {
		res.Set("default", Instance(e))
	}
	return res
}

func setInterval[T ir.Numeric](o *Object, iv *ir.Interval[T]) {
	if v, ok := iv.Min(); ok {
		o.Set("minimum", v)
	}
	if v, ok := iv.Max(); ok {
		o.Set("maximum", v)
	}
}

func setEnum[T comparable](o *Object, en *ir.Enum[T]) {
	if en.Len() == 0 {
		return
	}
	vs := make([]any, 0, en.Len())
	for _, v := range en.Values() {
		vs = append(vs, v)
	}
	o.Set("enum", vs)
}

func setProperties(o *Object, fs *ir.Fields) {
	o.Set("type", "object")
	props := &Object{}
	required := []any{}
	for n, f := range fs.All() {
		props.Set(n, Schema(f.Value(), f.Options()))
		if f.Options().Bool(OptRequired) {
			required = append(required, n)
		}
	}
	o.Set("properties", props)
	if len(required) != 0 {
		o.Set("required", required)
	}
}

func fieldSchema(f *ir.FieldType) *Object {
	res := &Object{}
	res.Set("$schema", schemaDraft)
	if f.Name() != "" {
		res.Set("title", f.Name())
	}
	res.Merge(Schema(f.Value(), f.Options()))
	return res
}

func moduleSchema(m *ir.Module) *Object {
	res := &Object{}
	res.Set("$schema", schemaDraft)
	if m.Name() != "" {
		res.Set("title", m.Name())
	}
	setProperties(res, m.Fields())
	return res
}
