package dirbuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/schemer/parse"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestOpenDir(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"person.schemer": `name: string = "ann"`,
		"order.schemer":  `items: object[] { sku: string } = [{sku: "a"}]`,
		"notes.txt":      `not a schema`,
	})
	if err := os.Mkdir(filepath.Join(root, "sub.schemer"), 0755); err != nil {
		t.Fatal(err)
	}
	dir, err := OpenDir(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(root, "order.schemer"), filepath.Join(root, "person.schemer")}
	if diff := cmp.Diff(want, dir.Files); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	e, err := dir.Modules.Get("order.items[0].sku")
	if err != nil {
		t.Fatal(err)
	}
	if e.String.Value().Value() != "a" {
		t.Errorf("got %q", e.String.Value().Value())
	}
	if _, ok := dir.Modules.Lookup("person"); !ok {
		t.Error("person not loaded")
	}
}

func TestOpenDirErrors(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"bad.schemer": `a: integer = "x"`,
	})
	if _, err := OpenDir(root, nil); err == nil {
		t.Error("expected parse error")
	}
	root = writeFiles(t, map[string]string{
		"a.schemer": `o: object { x: integer } = { x: 1, y: 2 }`,
	})
	if _, err := OpenDir(root, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenDir(root, []parse.ParseOption{parse.ParseStrict()}); err == nil {
		t.Error("expected strict error")
	}
	if _, err := OpenDir(filepath.Join(root, "missing"), nil); err == nil {
		t.Error("expected missing directory error")
	}
}

func TestWithSuffix(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"a.sch":     `a: any = 1`,
		"b.schemer": `b: any = 2`,
	})
	dir, err := OpenDir(root, nil, WithSuffix(".sch"))
	if err != nil {
		t.Fatal(err)
	}
	if dir.Modules.Len() != 1 {
		t.Fatalf("got %d modules", dir.Modules.Len())
	}
	if _, ok := dir.Modules.Lookup("a"); !ok {
		t.Error("a not loaded")
	}
	if got := ModuleName("x/y/z.schemer", DefaultSuffix); got != "z" {
		t.Errorf("got %q", got)
	}
}
