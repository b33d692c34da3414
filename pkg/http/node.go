package http

import (
	"fmt"
	"io"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-webserver/internal/parser"
)

// Parse parses a request in wire format into an AST.
//
// Returns an ast.ObjectNode of the form:
//
//	{ "type": "request", "method": "GET", "path": "/",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...] }
func Parse(input string, opts ...Option) (ast.SchemaNode, error) {
	return ParseReader(strings.NewReader(input), opts...)
}

// ParseReader reads one request from r and returns it as an AST.
func ParseReader(r io.Reader, opts ...Option) (ast.SchemaNode, error) {
	req, err := ParseRequest(r, opts...)
	if err != nil {
		return nil, err
	}
	return RequestToNode(req), nil
}

// RequestToNode converts a Request into an AST ObjectNode.
func RequestToNode(req *Request) ast.SchemaNode {
	return parser.MessageToNode(&parser.Message{
		Method:  req.method.String(),
		Path:    req.path,
		Version: req.protocol.String(),
		Headers: req.headers,
	})
}

// NodeToRequest converts an AST node (from Parse or RequestToNode) back to a
// Request. The method and version go through ParseMethod and ParseProtocol,
// so only supported tokens produce a Request.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	msg, err := parser.NodeToMessage(node)
	if err != nil {
		return nil, fmt.Errorf("http: NodeToRequest: %w", err)
	}

	if msg.Method == "" {
		return nil, newParseError(ErrMissingMethod, "", 0)
	}
	method, err := ParseMethod(msg.Method)
	if err != nil {
		return nil, err
	}
	if msg.Path == "" {
		return nil, newParseError(ErrMissingPath, "", 0)
	}
	if msg.Version == "" {
		return nil, newParseError(ErrMissingProtocol, "", 0)
	}
	protocol, err := ParseProtocol(msg.Version)
	if err != nil {
		return nil, err
	}

	return NewRequest(method, msg.Path, protocol, msg.Headers), nil
}
