package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed field path such as "a.b[0].c". Each step holds
// either a field name or an index.
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		switch {
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		case x.Field != nil:
			if buf.Len() != 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
		}
	}
	return buf.String()
}

// ParsePath parses a dotted path. A leading '$' is accepted and
// ignored. Field names containing path syntax may be single quoted.
func ParsePath(p string) (*Path, error) {
	p = strings.TrimPrefix(p, "$")
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return nil, nil
	}
	root := &Path{}
	if p[0] == '[' {
		if err := parseFrag(p, root); err != nil {
			return nil, err
		}
		return root, nil
	}
	if err := parseFrag("."+p, root); err != nil {
		return nil, err
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("%w: expected '[' <index> ']'", ErrBadPath)
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		rest = frag[i+2:]
	default:
		return fmt.Errorf("%w: expected '.' or '[' at %q", ErrBadPath, frag)
	}
	if rest == "" {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, fmt.Errorf("%w: index %q", ErrBadPath, is)
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("%w: expected field at end of path", ErrBadPath)
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("%w: empty field", ErrBadPath)
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("%w: end of path scanning for \"'\"", ErrBadPath)
}

func pathString(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// Lookup returns the element at path below e. Any values are looked
// through, and object fields resolve against the object's value when
// one was given, otherwise against its declarations.
func (e *Element) Lookup(path string) (*Element, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return e.get(p)
}

func (e *Element) get(p *Path) (*Element, error) {
	res := e
	for ; p != nil; p = p.Next {
		if p.IndexAll {
			return nil, fmt.Errorf("%w: [*] in lookup", ErrBadPath)
		}
		var err error
		res, err = res.step(p)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (e *Element) step(p *Path) (*Element, error) {
	e = unwrapAny(e)
	if e.IsNone() {
		return nil, fmt.Errorf("%w: %s on null", ErrNoPath, p.stepString())
	}
	if p.Field != nil {
		if e.Kind != ObjectKind {
			return nil, fmt.Errorf("%w: field %q of %s", ErrNoPath, *p.Field, e.TypeString())
		}
		if e.Object.IsArray() {
			return nil, fmt.Errorf("%w: field %q of object array", ErrNoPath, *p.Field)
		}
		f, ok := e.Object.Data().Get(*p.Field)
		if !ok {
			return nil, fmt.Errorf("%w: field %q", ErrNoPath, *p.Field)
		}
		return f.Value(), nil
	}
	if !e.IsArray() {
		return nil, fmt.Errorf("%w: index %d of %s", ErrNoPath, *p.Index, e.TypeString())
	}
	res, ok := e.at(*p.Index)
	if !ok {
		return nil, fmt.Errorf("%w: index %d out of bounds", ErrNoPath, *p.Index)
	}
	return res, nil
}

func (p *Path) stepString() string {
	q := *p
	q.Next = nil
	return q.String()
}

func unwrapAny(e *Element) *Element {
	for e != nil && e.Kind == AnyKind && !e.Any.IsArray() {
		e = e.Any.Value().Value()
	}
	return e
}

// at returns the i'th value of an array element as a scalar element of
// the same kind.
func (e *Element) at(i int) (*Element, bool) {
	switch e.Kind {
	case StringKind:
		v, ok := e.String.Value().At(i)
		return StringElement(StringOf(v)), ok
	case IntegerKind:
		v, ok := e.Integer.Value().At(i)
		return IntegerElement(IntegerOf(v)), ok
	case FloatingKind:
		v, ok := e.Floating.Value().At(i)
		return FloatingElement(FloatingOf(v)), ok
	case BooleanKind:
		v, ok := e.Boolean.Value().At(i)
		return BooleanElement(BooleanOf(v)), ok
	case ObjectKind:
		v, ok := e.Object.Value().At(i)
		if !ok {
			return nil, false
		}
		res := v.Instance()
		res.Add(v)
		return ObjectElement(res), true
	case AnyKind:
		v, ok := e.Any.Value().At(i)
		if !ok {
			return nil, false
		}
		if v == nil {
			return AnyElement(AnyOf(nil)), true
		}
		return v, true
	}
	return nil, false
}

// ListPath appends to dst every element matching path, which may use
// "[*]" to select all array elements. Missing steps match nothing.
func (e *Element) ListPath(dst []*Element, path string) ([]*Element, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return e.listPath(dst, p), nil
}

func (e *Element) listPath(dst []*Element, p *Path) []*Element {
	if p == nil {
		return append(dst, e)
	}
	if !p.IndexAll {
		next, err := e.step(p)
		if err != nil {
			return dst
		}
		return next.listPath(dst, p.Next)
	}
	e = unwrapAny(e)
	if e.IsNone() || !e.IsArray() {
		return dst
	}
	n := 0
	switch e.Kind {
	case StringKind:
		n = e.String.Value().Len()
	case IntegerKind:
		n = e.Integer.Value().Len()
	case FloatingKind:
		n = e.Floating.Value().Len()
	case BooleanKind:
		n = e.Boolean.Value().Len()
	case ObjectKind:
		n = e.Object.Value().Len()
	case AnyKind:
		n = e.Any.Value().Len()
	}
	for i := range n {
		v, _ := e.at(i)
		dst = v.listPath(dst, p.Next)
	}
	return dst
}

// Lookup returns the element at path below the field's value.
func (f *FieldType) Lookup(path string) (*Element, error) {
	return f.value.Lookup(path)
}

// Lookup resolves path whose first step names a top level field.
func (m *Module) Lookup(path string) (*Element, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if p == nil || p.Field == nil {
		return nil, fmt.Errorf("%w: module path must start with a field name", ErrBadPath)
	}
	f, ok := m.Field(*p.Field)
	if !ok {
		return nil, fmt.Errorf("%w: field %q", ErrNoPath, *p.Field)
	}
	return f.Value().get(p.Next)
}
