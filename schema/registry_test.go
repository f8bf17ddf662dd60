package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/parse"
)

func mustModule(t *testing.T, name, src string) *ir.Module {
	t.Helper()
	m, err := parse.ParseModule([]byte(src), name)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(mustModule(t, "person", `address: object { city: string = "x" }; tags: string[] = ["a", "b"]`)); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(mustModule(t, "a.b", `n: integer = 4`)); err != nil {
		t.Fatal(err)
	}
	err := r.Register(mustModule(t, "person", `x: any = null`))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected duplicate, got %v", err)
	}
	var names []string
	for n := range r.All() {
		names = append(names, n)
	}
	if diff := cmp.Diff([]string{"a.b", "person"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	e, err := r.Get("person.address.city")
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != ir.StringKind || e.String.Value().Value() != "x" {
		t.Errorf("got %s", e.TypeString())
	}
	e, err = r.Get("person.tags[1]")
	if err != nil {
		t.Fatal(err)
	}
	if e.String.Value().Value() != "b" {
		t.Errorf("got %q", e.String.Value().Value())
	}
	e, err = r.Get(Ref("a.b", "n"))
	if err != nil {
		t.Fatal(err)
	}
	if e.Integer.Value().Value() != 4 {
		t.Errorf("got %d", e.Integer.Value().Value())
	}
	if _, err := r.Get("nope.x"); !errors.Is(err, ErrNoModule) {
		t.Errorf("expected no module, got %v", err)
	}
	if _, err := r.Get("person"); !errors.Is(err, ir.ErrBadPath) {
		t.Errorf("expected bad path, got %v", err)
	}
	if _, err := r.Get("person.missing"); !errors.Is(err, ir.ErrNoPath) {
		t.Errorf("expected no path, got %v", err)
	}
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		ref, module, path string
	}{
		{"m", "m", ""},
		{"m.a.b", "m", "a.b"},
		{"m.a[0].b", "m", "a[0].b"},
		{"'x.y'.z", "x.y", "z"},
	}
	for _, tc := range tests {
		mod, path, err := ParseRef(tc.ref)
		if err != nil {
			t.Fatalf("%q: %v", tc.ref, err)
		}
		if mod != tc.module || path != tc.path {
			t.Errorf("%q: got (%q, %q)", tc.ref, mod, path)
		}
		if got := Ref(mod, path); got != tc.ref {
			t.Errorf("Ref(%q, %q) = %q", mod, path, got)
		}
	}
	if _, _, err := ParseRef("[0].a"); err == nil {
		t.Error("expected error for index first")
	}
}
