// Package tokenizer splits HTTP request lines using Shape's tokenizer framework.
package tokenizer

// Token type constants for request-line tokenizing.
const (
	TokenText       = "Text"       // method, request-target or version
	TokenWhitespace = "Whitespace" // one or more whitespace runes
)
