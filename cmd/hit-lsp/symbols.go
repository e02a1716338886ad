package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/hit-format/go-hit/tree"
)

func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	var res []interface{}
	for _, sym := range nodeSymbols(doc.root) {
		res = append(res, sym)
	}
	return res, nil
}

func nodeSymbols(n *tree.Node) []protocol.DocumentSymbol {
	var res []protocol.DocumentSymbol
	for _, c := range n.Children(tree.All) {
		switch c.Type() {
		case tree.SectionType:
			res = append(res, protocol.DocumentSymbol{
				Name:           c.Path(),
				Kind:           protocol.SymbolKindNamespace,
				Range:          nodeRange(c),
				SelectionRange: nodeRange(c),
				Children:       nodeSymbols(c),
			})
		case tree.FieldType:
			res = append(res, protocol.DocumentSymbol{
				Name:           c.Path(),
				Detail:         c.Kind().String(),
				Kind:           protocol.SymbolKindField,
				Range:          nodeRange(c),
				SelectionRange: nodeRange(c),
			})
		}
	}
	return res
}

// nodeRange spans the node's source lines, 0-based as LSP wants them.
func nodeRange(n *tree.Node) protocol.Range {
	start := n.Line()
	if start > 0 {
		start--
	}
	end := start
	if toks := n.Tokens(); len(toks) > 0 {
		if l := toks[len(toks)-1].Line(); l > 0 {
			end = l - 1
		}
	}
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start), Character: 0},
		End:   protocol.Position{Line: uint32(end) + 1, Character: 0},
	}
}

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.root == nil {
		return nil, nil
	}
	line := int(params.Position.Line) + 1
	var field *tree.Node
	doc.root.Walk(tree.FieldType, func(n *tree.Node) error {
		if n.Line() == line {
			field = n
		}
		return nil
	})
	if field == nil {
		return nil, nil
	}
	text := fmt.Sprintf("**%s** (%s)\n\n`%s`", field.FullPath(), field.Kind(), field.Val())
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}
