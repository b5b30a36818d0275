// Package parser maps parsed requests to shape-core AST nodes and back.
//
// A request is an ObjectNode with the following structure:
//
//	{ "type": "request", "method": "POST", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// "scheme" is present for absolute-form targets and "body" only when the request
// carries an entity.
package parser

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpscan/internal/fastparser"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from request wire-format data.
type Parser struct {
	data   []byte
	limits fastparser.Limits
}

// NewParser creates a new AST parser for the given input. Zero limits take defaults.
func NewParser(data []byte, limits fastparser.Limits) *Parser {
	return &Parser{data: data, limits: limits}
}

// Parse parses the request and returns an AST ObjectNode.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	req, err := fastparser.UnmarshalRequest(p.data, p.limits)
	if err != nil {
		return nil, err
	}
	return RequestToNode(req), nil
}

// RequestToNode converts a materialized request to an ObjectNode.
func RequestToNode(req *fastparser.Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"target":  ast.NewLiteralNode(req.Target, zeroPos),
		"version": ast.NewLiteralNode(req.Version, zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if req.Scheme != "" {
		props["scheme"] = ast.NewLiteralNode(req.Scheme, zeroPos)
	}
	if req.Body != nil {
		props["body"] = ast.NewLiteralNode(string(req.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers []fastparser.Header) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Key, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToRequest converts an ObjectNode back to a request. Missing properties stay empty;
// a property of the wrong node type is an error.
func NodeToRequest(node ast.SchemaNode) (*fastparser.Request, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if v, ok := props["type"]; ok {
		if s, _ := literalString(v); s != "request" {
			return nil, fmt.Errorf("expected type \"request\", got %q", s)
		}
	}

	req := &fastparser.Request{}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"method", &req.Method},
		{"target", &req.Target},
		{"version", &req.Version},
		{"scheme", &req.Scheme},
	} {
		v, ok := props[f.key]
		if !ok {
			continue
		}
		s, err := literalString(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = s
	}

	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		req.Headers = hdrs
	}
	if v, ok := props["body"]; ok {
		s, err := literalString(v)
		if err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}
		req.Body = []byte(s)
	}

	return req, nil
}

func nodeToHeaders(node ast.SchemaNode) ([]fastparser.Header, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make([]fastparser.Header, 0, len(elements))
	for i, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			return nil, fmt.Errorf("header %d: expected ObjectNode, got %T", i, elem)
		}
		props := obj.Properties()
		var h fastparser.Header
		for _, f := range []struct {
			key string
			dst *string
		}{
			{"key", &h.Key},
			{"value", &h.Value},
		} {
			v, ok := props[f.key]
			if !ok {
				continue
			}
			s, err := literalString(v)
			if err != nil {
				return nil, fmt.Errorf("header %d %s: %w", i, f.key, err)
			}
			*f.dst = s
		}
		if h.Key == "" {
			return nil, fmt.Errorf("header %d: missing key", i)
		}
		headers = append(headers, h)
	}

	return headers, nil
}

func literalString(node ast.SchemaNode) (string, error) {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return "", fmt.Errorf("expected LiteralNode, got %T", node)
	}
	s, ok := lit.Value().(string)
	if !ok {
		return "", fmt.Errorf("expected string literal, got %T", lit.Value())
	}
	return s, nil
}
