package main

import (
	"context"
	"strings"

	"github.com/signadot/schemer/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	end := lineColToOffset(doc.content, int(params.Position.Line), int(params.Position.Character))
	return &protocol.CompletionList{
		Items: completions(doc.content[:end]),
	}, nil
}

// completions suggests keywords given the text before the cursor: type
// names after a colon, literals after '=' and constraint keywords after
// a type.
func completions(before string) []protocol.CompletionItem {
	before = strings.TrimRightFunc(before, func(r rune) bool { return r == ' ' || r == '\t' })
	switch {
	case strings.HasSuffix(before, ":"):
		return typeItems()
	case strings.HasSuffix(before, "="),
		strings.HasSuffix(before, "["),
		strings.HasSuffix(before, ","):
		return literalItems()
	}
	for n := token.TypeString; n <= token.TypeAny; n++ {
		if strings.HasSuffix(before, n.String()) || strings.HasSuffix(before, n.String()+"[]") {
			return []protocol.CompletionItem{keywordItem(token.SEnum.String())}
		}
	}
	return append(typeItems(), literalItems()...)
}

func typeItems() []protocol.CompletionItem {
	res := []protocol.CompletionItem{}
	for n := token.TypeString; n <= token.TypeAny; n++ {
		res = append(res, protocol.CompletionItem{
			Label:      n.String(),
			Kind:       protocol.CompletionItemKindTypeParameter,
			InsertText: n.String(),
		})
	}
	return res
}

func literalItems() []protocol.CompletionItem {
	return []protocol.CompletionItem{
		keywordItem("true"),
		keywordItem("false"),
		keywordItem(token.SNull.String()),
	}
}

func keywordItem(s string) protocol.CompletionItem {
	return protocol.CompletionItem{
		Label:      s,
		Kind:       protocol.CompletionItemKindKeyword,
		InsertText: s,
	}
}
