package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/schemer/encode"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.module == nil {
		return nil, nil
	}
	f := fieldAt(doc, int(params.Position.Line), int(params.Position.Character))
	if f == nil {
		return nil, nil
	}
	text := hoverText(f)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// fieldAt returns the declaration on the given 0-based line starting
// closest before col, falling back to the first one on the line.
func fieldAt(doc *document, line, col int) *ir.FieldType {
	var (
		best    *ir.FieldType
		bestPos token.Pos
	)
	var visit func(fs *ir.Fields)
	visit = func(fs *ir.Fields) {
		for _, f := range fs.All() {
			if pos, ok := doc.positions[f]; ok && pos.Line-1 == line {
				switch {
				case best == nil:
					best, bestPos = f, pos
				case pos.Col-1 <= col && (bestPos.Col-1 > col || bestPos.Col < pos.Col):
					best, bestPos = f, pos
				}
			}
			if v := f.Value(); v.Kind == ir.ObjectKind {
				visit(v.Object.Fields())
			}
		}
	}
	visit(doc.module.Fields())
	return best
}

func hoverText(f *ir.FieldType) string {
	var parts []string
	e := f.Value()
	if f.Name() != "" {
		parts = append(parts, fmt.Sprintf("**Field:** `%s`", f.Name()))
	}
	parts = append(parts, fmt.Sprintf("**Type:** `%s`", e.TypeString()))
	if desc, ok := f.Options().StringValue("description"); ok {
		parts = append(parts, desc)
	}
	if e.Kind == ir.ObjectKind {
		parts = append(parts, fmt.Sprintf("object with %d fields", e.Object.Fields().Len()))
		return strings.Join(parts, "\n\n")
	}
	decl := encode.MustString(f, encode.Indent(0))
	parts = append(parts, "```schemer\n"+decl+"\n```")
	return strings.Join(parts, "\n\n")
}
