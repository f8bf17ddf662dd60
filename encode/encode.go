package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/schemer/format"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/token"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ir.Kind, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format != format.SchemerFormat {
		es.Color = nil
	}
	return es
}

// Encode writes f to w in the format selected by opts, Schemer text by
// default.
func Encode(f *ir.FieldType, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.SchemerFormat:
		buf := bytes.NewBuffer(nil)
		es.field(buf, f)
		buf.WriteByte('\n')
		return writeBytes(w, buf.Bytes())
	case format.JSONFormat:
		return encodeJSON(w, fieldInstance(f), es)
	case format.JSONSchemaFormat:
		return encodeJSON(w, fieldSchema(f), es)
	case format.YAMLFormat:
		return encodeYAML(w, fieldInstance(f), es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

// EncodeModule writes the fields of m. As Schemer text they are
// separated by blank lines; the other formats treat m as an object.
func EncodeModule(m *ir.Module, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.SchemerFormat:
		buf := bytes.NewBuffer(nil)
		i := 0
		for _, f := range m.Fields().All() {
			if i != 0 {
				buf.WriteString("\n")
			}
			es.field(buf, f)
			buf.WriteByte('\n')
			i++
		}
		return writeBytes(w, buf.Bytes())
	case format.JSONFormat:
		return encodeJSON(w, fieldsInstance(m.Fields()), es)
	case format.JSONSchemaFormat:
		return encodeJSON(w, moduleSchema(m), es)
	case format.YAMLFormat:
		return encodeYAML(w, fieldsInstance(m.Fields()), es)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
}

// EncodeElement writes e. As Schemer text it is written as an unnamed
// field.
func EncodeElement(e *ir.Element, w io.Writer, opts ...EncodeOption) error {
	return Encode(ir.NewField("", e, nil), w, opts...)
}

func writeBytes(w io.Writer, d []byte) error {
	_, err := w.Write(d)
	return err
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func (es *EncState) nl(buf *bytes.Buffer) {
	if es.indent == 0 {
		buf.WriteByte(' ')
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

// name renders a field or option name, quoting it unless it lexes as a
// plain identifier.
func name(s string) string {
	if token.IsIdentString(s) && !token.IsReserved(s) {
		return s
	}
	return token.Quote(s)
}

// field writes a declaration:
//
//	name(options): type[] interval enum {...} = value
func (es *EncState) field(buf *bytes.Buffer, f *ir.FieldType) {
	e := f.Value()
	k := e.Kind
	if f.Name() != "" {
		buf.WriteString(es.color(k, FieldColor, name(f.Name())))
	}
	if !f.Options().IsEmpty() {
		es.options(buf, k, f.Options())
	}
	if f.Name() != "" {
		buf.WriteString(es.color(k, SepColor, ":"))
		buf.WriteByte(' ')
	} else if !f.Options().IsEmpty() {
		buf.WriteByte(' ')
	}
	es.typeSpec(buf, e)
}

func (es *EncState) options(buf *bytes.Buffer, k ir.Kind, opts *ir.Options) {
	buf.WriteString(es.color(k, SepColor, "("))
	i := 0
	for n, v := range opts.All() {
		if i != 0 {
			buf.WriteString(", ")
		}
		i++
		buf.WriteString(es.color(k, OptionColor, name(n)))
		if isFlag(v) {
			continue
		}
		buf.WriteString(" = ")
		es.literal(buf, v)
	}
	buf.WriteString(es.color(k, SepColor, ")"))
}

// isFlag reports whether an option value is the implicit true of an
// option written without a value.
func isFlag(e *ir.Element) bool {
	return e.Kind == ir.BooleanKind && !e.Boolean.IsArray() &&
		e.Boolean.HasValue() && e.Boolean.Value().Value()
}

func (es *EncState) typeSpec(buf *bytes.Buffer, e *ir.Element) {
	if e.IsNone() {
		return
	}
	k := e.Kind
	buf.WriteString(es.color(k, TypeColor, k.String()))
	if k != ir.AnyKind && e.IsArray() {
		buf.WriteString(es.color(k, TypeColor, "[]"))
	}
	switch k {
	case ir.StringKind:
		writeEnum(es, buf, k, e.String.Enum(), token.Quote)
	case ir.IntegerKind:
		writeInterval(es, buf, k, e.Integer.Interval(), formatInt)
		writeEnum(es, buf, k, e.Integer.Enum(), formatInt)
	case ir.FloatingKind:
		writeInterval(es, buf, k, e.Floating.Interval(), token.FormatFloat)
		writeEnum(es, buf, k, e.Floating.Enum(), token.FormatFloat)
	case ir.ObjectKind:
		buf.WriteByte(' ')
		es.declarations(buf, e.Object.Fields())
	}
	if e.HasValue() {
		buf.WriteString(" = ")
		es.literal(buf, e)
	}
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func writeInterval[T ir.Numeric](es *EncState, buf *bytes.Buffer, k ir.Kind, iv *ir.Interval[T], f func(T) string) {
	if !iv.IsBounded() {
		return
	}
	buf.WriteByte(' ')
	if lo, ok := iv.Min(); ok {
		buf.WriteString(es.color(k, ConstraintColor, f(lo)))
	}
	buf.WriteString(es.color(k, ConstraintColor, ".."))
	if hi, ok := iv.Max(); ok {
		buf.WriteString(es.color(k, ConstraintColor, f(hi)))
	}
}

func writeEnum[T comparable](es *EncState, buf *bytes.Buffer, k ir.Kind, en *ir.Enum[T], f func(T) string) {
	if en.Len() == 0 {
		return
	}
	buf.WriteString(" ")
	buf.WriteString(es.color(k, ConstraintColor, "enum"))
	buf.WriteString(" {")
	for i, v := range en.Values() {
		if i != 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(es.color(k, ConstraintColor, f(v)))
	}
	buf.WriteString("}")
}

// declarations writes the field declarations of an object type.
func (es *EncState) declarations(buf *bytes.Buffer, fs *ir.Fields) {
	es.block(buf, fs, false)
}

// block writes fs between braces. When values is set only fields
// holding a value are written, as literal assignments.
func (es *EncState) block(buf *bytes.Buffer, fs *ir.Fields, values bool) {
	sep := es.color(ir.ObjectKind, SepColor, "{")
	n := 0
	es.depth++
	for _, f := range fs.All() {
		if values && !f.Value().HasValue() {
			continue
		}
		if n == 0 {
			buf.WriteString(sep)
		} else {
			buf.WriteString(",")
		}
		n++
		es.nl(buf)
		if values {
			k := f.Value().Kind
			buf.WriteString(es.color(k, FieldColor, name(f.Name())))
			buf.WriteString(es.color(k, SepColor, ":"))
			buf.WriteByte(' ')
			es.literal(buf, f.Value())
		} else {
			es.field(buf, f)
		}
	}
	es.depth--
	if n == 0 {
		buf.WriteString(sep)
		buf.WriteString(es.color(ir.ObjectKind, SepColor, "}"))
		return
	}
	es.nl(buf)
	buf.WriteString(es.color(ir.ObjectKind, SepColor, "}"))
}

// literal writes the value held by e.
func (es *EncState) literal(buf *bytes.Buffer, e *ir.Element) {
	switch e.Kind {
	case ir.StringKind:
		writeValues(es, buf, ir.StringKind, e.String.Value(), token.Quote)
	case ir.IntegerKind:
		writeValues(es, buf, ir.IntegerKind, e.Integer.Value(), formatInt)
	case ir.FloatingKind:
		writeValues(es, buf, ir.FloatingKind, e.Floating.Value(), token.FormatFloat)
	case ir.BooleanKind:
		writeValues(es, buf, ir.BooleanKind, e.Boolean.Value(), strconv.FormatBool)
	case ir.ObjectKind:
		es.objectLiteral(buf, e.Object)
	case ir.AnyKind:
		es.anyLiteral(buf, e.Any)
	}
}

func writeValues[T any](es *EncState, buf *bytes.Buffer, k ir.Kind, p *ir.PossibleArray[T], f func(T) string) {
	if !p.IsArray() {
		buf.WriteString(es.color(k, ValueColor, f(p.Value())))
		return
	}
	buf.WriteByte('[')
	for i, v := range p.Values() {
		if i != 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(es.color(k, ValueColor, f(v)))
	}
	buf.WriteByte(']')
}

func (es *EncState) objectLiteral(buf *bytes.Buffer, o *ir.ObjectType) {
	if !o.IsArray() {
		es.block(buf, o.Data(), true)
		return
	}
	buf.WriteByte('[')
	for i, v := range o.Value().Values() {
		if i != 0 {
			buf.WriteString(", ")
		}
		es.block(buf, v.Data(), true)
	}
	buf.WriteByte(']')
}

func (es *EncState) anyLiteral(buf *bytes.Buffer, a *ir.AnyType) {
	if !a.IsArray() {
		es.nullable(buf, a.Value().Value())
		return
	}
	buf.WriteByte('[')
	for i, v := range a.Value().Values() {
		if i != 0 {
			buf.WriteString(", ")
		}
		es.nullable(buf, v)
	}
	buf.WriteByte(']')
}

func (es *EncState) nullable(buf *bytes.Buffer, e *ir.Element) {
	if e == nil {
		buf.WriteString(es.color(ir.AnyKind, ValueColor, "null"))
		return
	}
	es.literal(buf, e)
}
