package main

import (
	"context"
	"sync"

	"github.com/signadot/schemer/debug"
	"github.com/signadot/schemer/ir"
	"github.com/signadot/schemer/parse"
	"github.com/signadot/schemer/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open file. module is nil when the content does not
// parse, in which case err holds the reason.
type document struct {
	uri       string
	content   string
	version   int32
	module    *ir.Module
	positions map[*ir.FieldType]token.Pos
	err       error
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.FieldType]token.Pos)
	m, err := parse.ParseModule([]byte(content), "", parse.ParsePositions(positions))
	if err != nil && debug.LSP() {
		debug.Logf("%s: %v\n", uri, err)
	}
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		module:    m,
		positions: positions,
		err:       err,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics(doc),
		})
	}
}

// diagnostics reports the parse error of doc, if any, at the position
// it carries.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "schemer",
	}
	if pos, ok := parse.Position(doc.err); ok {
		start := lspPosition(pos)
		end := start
		end.Character++
		d.Range = protocol.Range{Start: start, End: end}
	}
	return append(res, d)
}

// lspPosition converts a 1-based source position to a 0-based LSP one.
func lspPosition(p token.Pos) protocol.Position {
	line, col := p.LineCol()
	return protocol.Position{
		Line:      uint32(max(line-1, 0)),
		Character: uint32(max(col-1, 0)),
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change. A zero range replaces the
// whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r == (protocol.Range{}) {
		return change.Text
	}
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if start > end {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

// lineColToOffset returns the byte offset of a 0-based line and
// character, or len(content) past the end.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
