package main

import (
	"context"
	"strings"

	"github.com/signadot/schemer"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.module == nil {
		return nil, nil
	}
	return formatEdits(doc.content), nil
}

// formatEdits returns a single edit replacing the whole of content with
// its canonical form, or no edits if content is canonical or does not
// parse.
func formatEdits(content string) []protocol.TextEdit {
	d, err := schemer.Format([]byte(content))
	if err != nil {
		return nil
	}
	formatted := string(d)
	if formatted == content {
		return []protocol.TextEdit{}
	}
	lines := strings.Count(content, "\n")
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}
}
