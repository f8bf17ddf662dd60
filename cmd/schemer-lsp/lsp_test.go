package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestLineColToOffset(t *testing.T) {
	content := "ab\ncde\n\nf"
	tests := []struct {
		line, col int
		want      int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{0, 9, 2},
		{1, 1, 4},
		{2, 0, 7},
		{3, 0, 8},
		{3, 1, 9},
		{7, 0, 9},
	}
	for _, tc := range tests {
		if got := lineColToOffset(content, tc.line, tc.col); got != tc.want {
			t.Errorf("(%d, %d): got %d want %d", tc.line, tc.col, got, tc.want)
		}
	}
}

func TestApplyChange(t *testing.T) {
	content := "a: string\nb: integer"
	got := applyChange(content, protocol.TextDocumentContentChangeEvent{
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 3},
			End:   protocol.Position{Line: 1, Character: 10},
		},
		Text: "boolean",
	})
	if diff := cmp.Diff("a: string\nb: boolean", got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got = applyChange(content, protocol.TextDocumentContentChangeEvent{Text: "c: any"})
	if got != "c: any" {
		t.Errorf("full replacement: %q", got)
	}
}

func TestDiagnostics(t *testing.T) {
	doc := newDocument("file:///a.schemer", "a: string\nb: integer 5..1", 1)
	ds := diagnostics(doc)
	if len(ds) != 1 {
		t.Fatalf("got %d diagnostics", len(ds))
	}
	if ds[0].Range.Start.Line != 1 {
		t.Errorf("diagnostic on line %d: %s", ds[0].Range.Start.Line, ds[0].Message)
	}
	if ds[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity %v", ds[0].Severity)
	}
	doc = newDocument("file:///b.schemer", "a: string", 1)
	if ds := diagnostics(doc); len(ds) != 0 {
		t.Errorf("unexpected diagnostics %v", ds)
	}
}

func TestHover(t *testing.T) {
	doc := newDocument("file:///a.schemer", "person: object {\n  name(description = \"full name\"): string\n  age: integer 0..150\n}", 1)
	if doc.module == nil {
		t.Fatal(doc.err)
	}
	f := fieldAt(doc, 2, 5)
	if f == nil || f.Name() != "age" {
		t.Fatalf("got %v", f)
	}
	text := hoverText(f)
	if !strings.Contains(text, "`integer`") || !strings.Contains(text, "age: integer 0..150") {
		t.Errorf("hover: %s", text)
	}
	f = fieldAt(doc, 1, 0)
	if f == nil || f.Name() != "name" {
		t.Fatalf("got %v", f)
	}
	if !strings.Contains(hoverText(f), "full name") {
		t.Errorf("hover: %s", hoverText(f))
	}
	if f := fieldAt(doc, 3, 0); f != nil {
		t.Errorf("field on closing line: %s", f.Name())
	}
}

func labels(items []protocol.CompletionItem) []string {
	res := make([]string, len(items))
	for i := range items {
		res[i] = items[i].Label
	}
	return res
}

func TestCompletions(t *testing.T) {
	tests := []struct {
		before string
		want   []string
	}{
		{"a: ", []string{"string", "integer", "floating", "boolean", "object", "any"}},
		{"a: boolean = ", []string{"true", "false", "null"}},
		{"a: integer[] ", []string{"enum"}},
	}
	for _, tc := range tests {
		if diff := cmp.Diff(tc.want, labels(completions(tc.before))); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.before, diff)
		}
	}
}

func TestFormatEdits(t *testing.T) {
	edits := formatEdits("a:string\nb :integer=1")
	if len(edits) != 1 {
		t.Fatalf("got %d edits", len(edits))
	}
	if diff := cmp.Diff("a: string\n\nb: integer = 1\n", edits[0].NewText); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if edits[0].Range.End.Line != 2 {
		t.Errorf("end line %d", edits[0].Range.End.Line)
	}
	if edits := formatEdits("a: string\n"); len(edits) != 0 {
		t.Errorf("canonical input edited: %v", edits)
	}
	if edits := formatEdits("a: "); edits != nil {
		t.Errorf("bad input edited: %v", edits)
	}
}

func TestSemanticTokens(t *testing.T) {
	got := collectSemanticTokens("a: integer = 1\n  b(x): string", 0, 1)
	prop, kw, num, op := tokenTypeIndex(protocol.SemanticTokenProperty),
		tokenTypeIndex(protocol.SemanticTokenKeyword),
		tokenTypeIndex(protocol.SemanticTokenNumber),
		tokenTypeIndex(protocol.SemanticTokenOperator)
	want := []uint32{
		0, 0, 1, prop, 1,
		0, 1, 1, op, 0,
		0, 2, 7, kw, 0,
		0, 8, 1, op, 0,
		0, 2, 1, num, 0,
		1, 2, 1, prop, 1,
		0, 1, 1, op, 0,
		0, 1, 1, prop, 0,
		0, 1, 1, op, 0,
		0, 1, 1, op, 0,
		0, 2, 6, kw, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got = collectSemanticTokens("a: integer = 1\n  b(x): string", 1, 1)
	if len(got) != 6*5 || got[0] != 1 || got[1] != 2 {
		t.Errorf("range: %v", got)
	}
}
