package main

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/signadot/schemer/token"

	"go.lsp.dev/protocol"
)

var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
}

var tokenModifiers = []protocol.SemanticTokenModifiers{
	protocol.SemanticTokenModifierDefinition,
	protocol.SemanticTokenModifierModification,
}

func tokenTypeIndex(t protocol.SemanticTokenTypes) uint32 {
	for i, x := range tokenTypes {
		if x == t {
			return uint32(i)
		}
	}
	return 0
}

// semanticType classifies toks[i]. Names directly followed by ':' or
// '(' are declarations.
func semanticType(toks []token.Token, i int) (protocol.SemanticTokenTypes, uint32) {
	tok := &toks[i]
	switch tok.Type {
	case token.TIdent, token.TString:
		if i+1 < len(toks) && (toks[i+1].IsSpecial(token.SColon) || toks[i+1].IsSpecial(token.SLParen)) {
			return protocol.SemanticTokenProperty, 1
		}
		if tok.Type == token.TIdent {
			return protocol.SemanticTokenProperty, 0
		}
		return protocol.SemanticTokenString, 0
	case token.TInteger, token.TFloating:
		return protocol.SemanticTokenNumber, 0
	case token.TBoolean, token.TType:
		return protocol.SemanticTokenKeyword, 0
	case token.TSpecial:
		switch tok.Special {
		case token.SEnum, token.SNull:
			return protocol.SemanticTokenKeyword, 0
		}
	}
	return protocol.SemanticTokenOperator, 0
}

// collectSemanticTokens delta encodes the tokens of content lying on
// lines [fromLine, toLine]. It returns nil if content does not lex.
func collectSemanticTokens(content string, fromLine, toLine int) []uint32 {
	toks, err := token.Tokenize(nil, []byte(content))
	if err != nil {
		return nil
	}
	res := []uint32{}
	prevLine, prevChar := 0, 0
	for i := range toks {
		tok := &toks[i]
		if tok.Type == token.TEOF || strings.Contains(tok.Literal, "\n") {
			continue
		}
		line, col := tok.Pos.Line-1, tok.Pos.Col-1
		if line < fromLine || line > toLine {
			continue
		}
		tt, mods := semanticType(toks, i)
		deltaChar := col
		if line == prevLine {
			deltaChar = col - prevChar
		}
		res = append(res,
			uint32(line-prevLine),
			uint32(deltaChar),
			uint32(utf8.RuneCountInString(tok.Literal)),
			tokenTypeIndex(tt),
			mods)
		prevLine, prevChar = line, col
	}
	return res
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content, 0, strings.Count(doc.content, "\n")),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: collectSemanticTokens(doc.content, int(params.Range.Start.Line), int(params.Range.End.Line)),
	}, nil
}
