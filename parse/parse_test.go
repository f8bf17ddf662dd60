package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/token"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in    string
		check func(error) bool
	}{
		{`integer 1..10 = 15`, isConstraint(IntervalConstraint)},
		{`string enum {"a","b"} = "c"`, isConstraint(EnumConstraint)},
		{`integer enum {1, 2} = 3`, isConstraint(EnumConstraint)},
		{`integer enum {1, 1}`, isConstraint(DuplicateEnumConstraint)},
		{`integer 5..1`, isConstraint(EmptyIntervalConstraint)},
		{`floating 0..1 = 1.5`, isConstraint(IntervalConstraint)},
		{`integer[] = 5`, isUnexpected("[")},
		{`integer = [5]`, isUnexpected("integer")},
		{`a: any`, isUnexpected("= or :")},
		{`a string`, isUnexpected(":")},
		{`a: text`, isUnexpected("type name")},
		{`a: string b`, isUnexpected("end of input")},
		{`a: object`, isUnexpected("{")},
		{`a: integer = -true`, isUnexpected("integer")},
		{`a: integer = 1.5`, isUnexpected("integer")},
		{`a: string[] = ["x", 1]`, isUnexpected(`] or string`)},
		{`object { a: integer a: string }`, isDuplicate("a")},
		{`a: any = {x: 1, x: 2}`, isDuplicate("x")},
		{`o: object { a: integer } = { a: 1, a: 2 }`, isDuplicate("a")},
		{`o: object { a: integer } = { b }`, isUnresolved("b")},
		{`o: object[] { x: integer 0..3 } = [{x: 1}, {x: 4}]`, isConstraint(IntervalConstraint)},
		{`a: string = "open`, func(err error) bool { return errors.Is(err, token.ErrUnterminated) }},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			_, err := ParseString(tc.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !tc.check(err) {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func isConstraint(k ConstraintKind) func(error) bool {
	return func(err error) bool {
		var ce *ConstraintError
		return errors.As(err, &ce) && ce.Kind == k && errors.Is(err, ErrParse)
	}
}

func isUnexpected(expected string) func(error) bool {
	return func(err error) bool {
		var ue *UnexpectedTokenError
		return errors.As(err, &ue) && ue.Expected == expected
	}
}

func isDuplicate(name string) func(error) bool {
	return func(err error) bool {
		var de *DuplicateFieldError
		return errors.As(err, &de) && de.Name == name
	}
}

func isUnresolved(name string) func(error) bool {
	return func(err error) bool {
		var re *UnresolvedFieldError
		return errors.As(err, &re) && re.Name == name
	}
}

func TestErrorPositions(t *testing.T) {
	tests := []struct {
		in  string
		pos token.Pos
		msg string
	}{
		{
			in:  `integer[] = 5`,
			pos: token.Pos{Offset: 12, Line: 1, Col: 13},
			msg: "unexpected '5' at offset 12 (line=1, col=13), expected '['",
		},
		{
			in:  `object { a: integer a: string }`,
			pos: token.Pos{Offset: 20, Line: 1, Col: 21},
			msg: `field "a" is already defined, at offset 20 (line=1, col=21)`,
		},
		{
			in:  "a: integer 1..10\n  = 15",
			pos: token.Pos{Offset: 21, Line: 2, Col: 5},
			msg: "value 15 is not allowed by interval at offset 21 (line=2, col=5)",
		},
		{
			in:  "a: string =",
			pos: token.Pos{Offset: 11, Line: 1, Col: 12},
			msg: "unexpected 'end of input' at offset 11 (line=1, col=12), expected 'string'",
		},
	}
	for _, tc := range tests {
		_, err := ParseString(tc.in)
		if err == nil {
			t.Errorf("%q: expected error", tc.in)
			continue
		}
		if err.Error() != tc.msg {
			t.Errorf("%q: got message %q", tc.in, err.Error())
		}
		pos, ok := Position(err)
		if !ok {
			t.Errorf("%q: no position in %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.pos, pos); diff != "" {
			t.Errorf("%q: (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseConstraints(t *testing.T) {
	f, err := ParseString(`integer 1..10 = 5`)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "" {
		t.Errorf("unexpected name %q", f.Name())
	}
	i := f.Value().Integer
	if got := i.Value().Value(); got != 5 {
		t.Errorf("got %d", got)
	}
	lo, _ := i.Interval().Min()
	hi, _ := i.Interval().Max()
	if lo != 1 || hi != 10 {
		t.Errorf("interval %d..%d", lo, hi)
	}

	f, err = ParseString(`string enum {"a","b"} = "a"`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, f.Value().String.Enum().Values()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	f, err = ParseString(`n: floating[] -1.5.. enum {0, 2.5} = [+2.5, 0]`)
	if err != nil {
		t.Fatal(err)
	}
	fl := f.Value().Floating
	if lo, ok := fl.Interval().Min(); !ok || lo != -1.5 {
		t.Errorf("min %v %v", lo, ok)
	}
	if _, ok := fl.Interval().Max(); ok {
		t.Error("unexpected max")
	}
	if diff := cmp.Diff([]float64{2.5, 0}, fl.Value().Values()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParsePerson(t *testing.T) {
	f, err := ParseString(`person: object {
  name: string
  age: integer 0..150 = 30
}`)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "person" || f.Value().Kind != ir.ObjectKind {
		t.Fatalf("got %s %s", f.Name(), f.Value().TypeString())
	}
	o := f.Value().Object
	if diff := cmp.Diff([]string{"name", "age"}, o.Fields().Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	name, _ := o.Field("name")
	if name.Value().Kind != ir.StringKind || name.Value().HasValue() {
		t.Errorf("name: %s has value %v", name.Value().TypeString(), name.Value().HasValue())
	}
	age, err := f.Lookup("age")
	if err != nil {
		t.Fatal(err)
	}
	if age.Kind != ir.IntegerKind || age.Integer.Value().Value() != 30 {
		t.Errorf("age: %s", age.TypeString())
	}
	if !age.Integer.Interval().Contains(150) || age.Integer.Interval().Contains(151) {
		t.Error("age interval")
	}
	if f.Value().HasValue() {
		t.Error("person has no literal value")
	}
}

func TestParseAnyInference(t *testing.T) {
	f, err := ParseString(`main: any = { x: 1, y: "s", z: [1,2,3], w: -2.5, n: null }`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		kind ir.Kind
		want any
	}{
		{"x", ir.IntegerKind, int64(1)},
		{"y", ir.StringKind, "s"},
		{"z[2]", ir.IntegerKind, int64(3)},
		{"w", ir.FloatingKind, -2.5},
	}
	for _, tc := range tests {
		e, err := f.Lookup(tc.path)
		if err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if e.Kind != tc.kind {
			t.Errorf("%s: got kind %s", tc.path, e.Kind)
			continue
		}
		var got any
		switch e.Kind {
		case ir.IntegerKind:
			got = e.Integer.Value().Value()
		case ir.FloatingKind:
			got = e.Floating.Value().Value()
		case ir.StringKind:
			got = e.String.Value().Value()
		}
		if got != tc.want {
			t.Errorf("%s: got %v", tc.path, got)
		}
	}
	n, err := f.Lookup("n")
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind != ir.AnyKind || !n.Any.IsNull() {
		t.Errorf("n: %s", n.TypeString())
	}
	if _, err := f.Lookup("q"); !errors.Is(err, ir.ErrNoPath) {
		t.Errorf("expected no path, got %v", err)
	}
}

func TestParseGuessedSeparator(t *testing.T) {
	f, err := ParseString(`a: any = { x 1, y: 2, z = 3 }`)
	if err != nil {
		t.Fatal(err)
	}
	for path, want := range map[string]int64{"x": 1, "y": 2, "z": 3} {
		e, err := f.Lookup(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if e.Kind != ir.IntegerKind || e.Integer.Value().Value() != want {
			t.Errorf("%s: got %s", path, e.TypeString())
		}
	}
	_, err = ParseString(`o: object { x: integer } = { x 1 }`)
	if !isUnexpected(": or =")(err) {
		t.Errorf("declared literal field without separator: %v", err)
	}
}

func TestParseObjectLiterals(t *testing.T) {
	f, err := ParseString(`o: object[] {
  x: integer
  y: string = "d"
  tags: any = null
} = [{x: 1}, {x: 2, y: "e", tags: ["a"], extra: true}]`)
	if err != nil {
		t.Fatal(err)
	}
	o := f.Value().Object
	if !o.IsArray() || o.Value().Len() != 2 {
		t.Fatalf("expected 2 object values")
	}
	first, err := f.Lookup("[0].y")
	if err != nil {
		t.Fatal(err)
	}
	if first.String.Value().Value() != "d" {
		t.Errorf("default not carried into literal")
	}
	extra, err := f.Lookup("[1].extra")
	if err != nil {
		t.Fatal(err)
	}
	if extra.Kind != ir.BooleanKind || !extra.Boolean.Value().Value() {
		t.Errorf("extra: %s", extra.TypeString())
	}
	xs, err := f.Value().ListPath(nil, "[*].x")
	if err != nil {
		t.Fatal(err)
	}
	got := []int64{}
	for _, x := range xs {
		got = append(got, x.Integer.Value().Value())
	}
	if diff := cmp.Diff([]int64{1, 2}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ParseString(`o: object { a: integer } = { a: 1, b: 2 }`, ParseStrict()); err == nil {
		t.Error("strict parse accepted undeclared field")
	}
}

func TestParseArrays(t *testing.T) {
	f, err := ParseString(`s: string[] = []`)
	if err != nil {
		t.Fatal(err)
	}
	s := f.Value().String
	if !s.IsArray() || !s.HasValue() || s.Value().Len() != 0 {
		t.Errorf("empty array: array=%v value=%v", s.IsArray(), s.HasValue())
	}
	f, err = ParseString(`b: boolean[] = [true, false,]`)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]bool{true, false}, f.Value().Boolean.Value().Values()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		in   string
		name string
		kind ir.Kind
	}{
		{`string: string`, "string", ir.StringKind},
		{`enum(x): integer`, "enum", ir.IntegerKind},
		{`"a b": boolean`, "a b", ir.BooleanKind},
		{`integers: floating`, "integers", ir.FloatingKind},
		{`boolean`, "", ir.BooleanKind},
		{`(x) any = 1`, "", ir.AnyKind},
	}
	for _, tc := range tests {
		f, err := ParseString(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if f.Name() != tc.name || f.Value().Kind != tc.kind {
			t.Errorf("%q: got %q %s", tc.in, f.Name(), f.Value().Kind)
		}
	}
}

func TestParseOptions(t *testing.T) {
	f, err := ParseString(`f(required, max: 3, tag = "t", none = null, enum): string`)
	if err != nil {
		t.Fatal(err)
	}
	opts := f.Options()
	if diff := cmp.Diff([]string{"required", "max", "tag", "none", "enum"}, opts.Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !opts.Bool("required") || !opts.Bool("enum") {
		t.Error("flags should be true")
	}
	if v, ok := opts.StringValue("tag"); !ok || v != "t" {
		t.Errorf("tag: %q %v", v, ok)
	}
	if m, _ := opts.Get("max"); m.Kind != ir.IntegerKind || m.Integer.Value().Value() != 3 {
		t.Error("max")
	}
	if n, _ := opts.Get("none"); n.Kind != ir.AnyKind || !n.Any.IsNull() || opts.Bool("none") {
		t.Error("none")
	}
}

func TestParseModule(t *testing.T) {
	positions := map[*ir.FieldType]token.Pos{}
	m, err := ParseModule([]byte("a: string;\n  b: integer = 1,\nc: any = [1, \"x\"]"), "mod", ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "mod" {
		t.Errorf("name %q", m.Name())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, m.Fields().Names()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	b, _ := m.Field("b")
	if diff := cmp.Diff(token.Pos{Offset: 13, Line: 2, Col: 3}, positions[b]); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	e, err := m.Lookup("c[1]")
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != ir.StringKind || e.String.Value().Value() != "x" {
		t.Errorf("c[1]: %s", e.TypeString())
	}
	if _, err := ParseModule([]byte("a: string a: integer"), "dup"); !errors.As(err, new(*DuplicateFieldError)) {
		t.Errorf("expected duplicate field, got %v", err)
	}
	if GetPositions(ParsePositions(positions)) == nil {
		t.Error("positions option lost")
	}
}

func TestParseExactFloats(t *testing.T) {
	f, err := ParseString(`f: floating = 1.0000000000000002`, ParseExactFloats())
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Value().Floating.Value().Value(); got != 1.0000000000000002 {
		t.Errorf("got %v", got)
	}
}
