package http

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node (from Parse) back to wire format bytes.
func Render(node ast.SchemaNode) ([]byte, error) {
	if _, ok := node.(*ast.ObjectNode); !ok {
		return nil, fmt.Errorf("http: Render: expected ObjectNode, got %T", node)
	}
	req, err := NodeToRequest(node)
	if err != nil {
		return nil, fmt.Errorf("http: Render: %w", err)
	}
	return Marshal(req)
}
