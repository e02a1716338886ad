package main

import (
	"context"
	"errors"
	"sync"

	"go.lsp.dev/protocol"

	hit "github.com/hit-format/go-hit"
	"github.com/hit-format/go-hit/debug"
	"github.com/hit-format/go-hit/parse"
	"github.com/hit-format/go-hit/tree"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri      string
	content  string
	version  int32
	root     *tree.Node
	parseErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	// root is nil on parse error; content is kept either way so
	// diagnostics can be recomputed
	root, err := hit.Parse(uri, []byte(content))
	ds.docs[uri] = &document{
		uri:      uri,
		content:  content,
		version:  version,
		root:     root,
		parseErr: err,
	}
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

	diagnostics := s.validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.parseErr == nil {
		return diagnostics
	}
	line := uint32(0)
	var perr *parse.Error
	if errors.As(doc.parseErr, &perr) && perr.Line > 0 {
		line = uint32(perr.Line - 1)
	}
	if debug.LSP() {
		debug.Logf("diagnostic %s line %d: %v\n", doc.uri, line, doc.parseErr)
	}
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line + 1, Character: 0},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.parseErr.Error(),
		Source:   "hit",
	})
	return diagnostics
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

// applyChange splices an incremental edit into content. Sync is
// advertised as incremental, so every change event carries a range; an
// empty range is an insertion at that position (including 0:0, typing
// at the top of the document).
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	start := byteOffset(content, int(change.Range.Start.Line), int(change.Range.Start.Character))
	end := byteOffset(content, int(change.Range.End.Line), int(change.Range.End.Character))
	if end < start {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

// byteOffset maps a 0-based line and character position to a byte
// offset into content, counting characters in runes. Positions past the
// end of a line clamp to the line's newline; positions past the last
// line clamp to len(content).
func byteOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line {
			if currentCol == col {
				return i
			}
			if r == '\n' {
				return i
			}
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
