package http

import (
	"errors"
	"fmt"
)

// Parse error kinds. A *ParseError unwraps to exactly one of these, so
// callers match them with errors.Is.
var (
	ErrEmptyRequest        = errors.New("request is empty")
	ErrMissingMethod       = errors.New("http method is missing")
	ErrUnsupportedMethod   = errors.New("http method is not supported")
	ErrMissingPath         = errors.New("request path is missing")
	ErrMissingProtocol     = errors.New("request protocol version is missing")
	ErrUnsupportedProtocol = errors.New("http protocol is not supported")
	ErrMissingHeaderName   = errors.New("header name is missing")
	ErrMissingHeaderValue  = errors.New("header value is missing")
	ErrIO                  = errors.New("read failed")
)

// errInvalidUTF8 is the ErrIO cause for lines that are not valid UTF-8.
var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// ParseError represents an error that occurred while parsing a request.
type ParseError struct {
	Kind  error  // one of the Err* kinds above
	Token string // offending token, header name or header line (empty if none)
	Line  int    // 1-indexed line number where error occurred (0 if unknown)
	Err   error  // underlying cause, set for ErrIO
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("http: parse error at line %d: %s", e.Line, e.message())
	}
	return fmt.Sprintf("http: %s", e.message())
}

func (e *ParseError) message() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	case e.Token != "":
		return fmt.Sprintf("%v: %q", e.Kind, e.Token)
	}
	return fmt.Sprint(e.Kind)
}

// Unwrap exposes both the kind and the I/O cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newParseError(kind error, token string, line int) *ParseError {
	return &ParseError{Kind: kind, Token: token, Line: line}
}
