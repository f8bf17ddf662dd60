package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIntervalContains(t *testing.T) {
	var i Interval[int64]
	if i.IsBounded() || !i.Contains(-1<<62) {
		t.Fatal("zero interval should be unbounded")
	}
	i.SetMin(1)
	i.SetMax(10)
	for v, want := range map[int64]bool{0: false, 1: true, 5: true, 10: true, 15: false} {
		if got := i.Contains(v); got != want {
			t.Errorf("Contains(%d) = %t", v, got)
		}
	}
	var f Interval[float64]
	f.SetMax(0.5)
	if !f.Contains(-100) || f.Contains(0.75) {
		t.Error("half open interval")
	}
	f.SetMin(1)
	if !f.IsEmpty() {
		t.Error("expected empty interval")
	}
}

func TestEnum(t *testing.T) {
	e := &Enum[string]{}
	if !e.TryAdd("a") || !e.TryAdd("b") {
		t.Fatal("add failed")
	}
	if e.TryAdd("a") {
		t.Error("duplicate accepted")
	}
	if diff := cmp.Diff([]string{"a", "b"}, e.Values()); diff != "" {
		t.Error(diff)
	}
	if e.Contains("c") {
		t.Error("c is not a member")
	}
}

func TestNilEnum(t *testing.T) {
	s := NewString()
	en := s.Enum()
	if en.Len() != 0 || en.Values() != nil || en.Contains("a") {
		t.Error("undeclared enum should be empty")
	}
	if !s.CheckEnum("a") {
		t.Error("undeclared enum should allow every value")
	}
}

func TestAssignment(t *testing.T) {
	i := NewInteger()
	if !i.IsDefault() || i.HasValue() {
		t.Fatal("fresh integer should be default")
	}
	i.Add(0)
	if i.IsDefault() {
		t.Error("explicit zero should not be default")
	}
	s := NewString()
	s.AddEnum("x")
	if s.HasValue() {
		t.Error("declaring an enum does not assign a value")
	}
	a := NewInteger()
	a.MakeArray()
	a.Assign()
	if !a.HasValue() || a.Value().Len() != 0 {
		t.Error("empty array literal")
	}
}

func TestTemplate(t *testing.T) {
	n := NewInteger()
	n.MakeArray()
	n.Interval().SetMin(2)
	n.AddEnum(3)
	n.Add(3)
	tmpl := n.Template()
	if tmpl.HasValue() || !tmpl.IsArray() || tmpl.Value().Len() != 0 {
		t.Error("template should be an empty array")
	}
	if !tmpl.CheckEnum(3) || tmpl.CheckEnum(4) || tmpl.CheckInterval(1) {
		t.Error("template should keep constraints")
	}
	tmpl.AddEnum(4)
	if n.CheckEnum(4) {
		t.Error("template shares enum storage")
	}
}

func person() *FieldType {
	obj := NewObject()
	obj.AddField(NewField("name", StringElement(NewString()), nil))
	age := NewInteger()
	age.Interval().SetMin(0)
	age.Interval().SetMax(150)
	age.Add(30)
	obj.AddField(NewField("age", IntegerElement(age), nil))
	return NewField("person", ObjectElement(obj), nil)
}

func TestFieldsOrdered(t *testing.T) {
	p := person()
	if diff := cmp.Diff([]string{"name", "age"}, p.Value().Object.Fields().Names()); diff != "" {
		t.Error(diff)
	}
	if p.Value().Object.AddField(NewField("name", StringElement(NewString()), nil)) {
		t.Error("duplicate field accepted")
	}
}

func TestEqual(t *testing.T) {
	a, b := person(), person()
	if !FieldEqual(a, b) {
		t.Fatal("expected equal")
	}
	b.Value().Object.Fields().Put(NewField("age", IntegerElement(IntegerOf(30)), nil))
	if FieldEqual(a, b) {
		t.Error("interval difference not detected")
	}
	c := person()
	c.Options().SetFlag("required")
	if FieldEqual(a, c) {
		t.Error("option difference not detected")
	}
	if !FieldEqual(a, a.Clone()) {
		t.Error("clone differs")
	}
	x := IntegerElement(NewInteger())
	y := IntegerElement(IntegerOf(0))
	if Equal(x, y) {
		t.Error("declared and assigned zero must differ")
	}
}

func anyMain() *FieldType {
	inner := NewObject()
	inner.AddField(NewField("x", IntegerElement(IntegerOf(1)), nil))
	inner.AddField(NewField("y", StringElement(StringOf("s")), nil))
	z := NewAnyArray()
	z.Add(IntegerElement(IntegerOf(1)))
	z.Add(nil)
	z.Add(FloatingElement(FloatingOf(2.5)))
	inner.AddField(NewField("z", AnyElement(z), nil))
	holder := NewObject()
	holder.Add(inner)
	return NewField("main", AnyElement(AnyOf(ObjectElement(holder))), nil)
}

func TestLookup(t *testing.T) {
	f := anyMain()
	tests := []struct {
		path string
		kind Kind
		err  error
	}{
		{path: "x", kind: IntegerKind},
		{path: "$.y", kind: StringKind},
		{path: "z", kind: AnyKind},
		{path: "z[0]", kind: IntegerKind},
		{path: "z[1]", kind: AnyKind},
		{path: "z[2]", kind: FloatingKind},
		{path: "z[3]", err: ErrNoPath},
		{path: "w", err: ErrNoPath},
		{path: "x.y", err: ErrNoPath},
		{path: "x[", err: ErrBadPath},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			e, err := f.Lookup(tc.path)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if e.Kind != tc.kind {
				t.Errorf("kind %s want %s", e.Kind, tc.kind)
			}
		})
	}
	x, _ := f.Lookup("x")
	if got := x.Integer.Value().Value(); got != 1 {
		t.Errorf("x = %d", got)
	}
}

func TestLookupDeclarations(t *testing.T) {
	p := person()
	age, err := p.Lookup("age")
	if err != nil {
		t.Fatal(err)
	}
	if hi, ok := age.Integer.Interval().Max(); !ok || hi != 150 {
		t.Errorf("max = %d, %t", hi, ok)
	}
	m := NewModule("people")
	m.Add(p)
	e, err := m.Lookup("person.name")
	if err != nil {
		t.Fatal(err)
	}
	if e.TypeString() != "string" {
		t.Errorf("type %s", e.TypeString())
	}
}

func TestListPath(t *testing.T) {
	f := anyMain()
	res, err := f.Value().ListPath(nil, "z[*]")
	if err != nil {
		t.Fatal(err)
	}
	kinds := make([]Kind, len(res))
	for i, e := range res {
		kinds[i] = e.Kind
	}
	if diff := cmp.Diff([]Kind{IntegerKind, AnyKind, FloatingKind}, kinds); diff != "" {
		t.Error(diff)
	}
}

func TestPathString(t *testing.T) {
	for _, s := range []string{"a.b[1].c", "[0].x", "a[*]", "'a.b'.c"} {
		p, err := ParsePath(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.String(); got != s {
			t.Errorf("%q round tripped to %q", s, got)
		}
	}
}

func TestOptions(t *testing.T) {
	o := NewOptions()
	o.SetFlag("readonly")
	o.Set("description", StringElement(StringOf("who")))
	o.Set("readonly", BooleanElement(BooleanOf(false)))
	if diff := cmp.Diff([]string{"readonly", "description"}, o.Names()); diff != "" {
		t.Error(diff)
	}
	if o.Bool("readonly") || o.Bool("missing") {
		t.Error("bool")
	}
	if d, ok := o.StringValue("description"); !ok || d != "who" {
		t.Errorf("description %q", d)
	}
}
