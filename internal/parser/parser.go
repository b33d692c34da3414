// Package parser maps HTTP request messages to shape-core AST nodes
// (ObjectNode, LiteralNode, ArrayDataNode) and back.
//
// A request is mapped to an ObjectNode with the following structure:
//
//	{ "type": "request", "method": "GET", "path": "/",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...] }
//
// Header elements are ordered by key so equal messages produce equal trees.
package parser

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// Message holds the wire tokens of a request, before any validation of the
// method or version against the supported set.
type Message struct {
	Method  string
	Path    string
	Version string
	Headers map[string]string
}

// MessageToNode converts a request message into an AST ObjectNode.
func MessageToNode(msg *Message) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(msg.Method, zeroPos),
		"path":    ast.NewLiteralNode(msg.Path, zeroPos),
		"version": ast.NewLiteralNode(msg.Version, zeroPos),
		"headers": headersToNode(msg.Headers),
	}
	return ast.NewObjectNode(props, zeroPos)
}

func headersToNode(headers map[string]string) ast.SchemaNode {
	keys := slices.Sorted(maps.Keys(headers))
	elements := make([]ast.SchemaNode, len(keys))
	for i, k := range keys {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(k, zeroPos),
			"value": ast.NewLiteralNode(headers[k], zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToMessage converts an AST ObjectNode back to a request message.
// The node must carry "type": "request".
func NodeToMessage(node ast.SchemaNode) (*Message, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("expected ObjectNode, got %T", node)
	}

	props := obj.Properties()
	if typ := stringProp(props, "type"); typ != "request" {
		return nil, fmt.Errorf("expected message type %q, got %q", "request", typ)
	}

	msg := &Message{
		Method:  stringProp(props, "method"),
		Path:    stringProp(props, "path"),
		Version: stringProp(props, "version"),
		Headers: map[string]string{},
	}

	if v, ok := props["headers"]; ok {
		hdrs, err := nodeToHeaders(v)
		if err != nil {
			return nil, err
		}
		msg.Headers = hdrs
	}

	return msg, nil
}

func stringProp(props map[string]ast.SchemaNode, name string) string {
	v, ok := props[name]
	if !ok {
		return ""
	}
	lit, ok := v.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}

func nodeToHeaders(node ast.SchemaNode) (map[string]string, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}

	elements := arr.Elements()
	headers := make(map[string]string, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		key := stringProp(props, "key")
		if key == "" {
			continue
		}
		headers[key] = stringProp(props, "value")
	}

	return headers, nil
}
