package http

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-httpscan/internal/parser"
)

// Parse parses a complete request into an AST.
//
// Returns an ast.ObjectNode:
//
//	{ "type": "request", "method": "GET", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// "scheme" is set for absolute-form targets and "body" only when an entity is present.
func Parse(input string) (ast.SchemaNode, error) {
	return parser.NewParser([]byte(input), Limits{}).Parse()
}

// ParseReader reads all data from r and parses it as a request into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return parser.NewParser(data, Limits{}).Parse()
}
