// Package http provides the HTTP/1.x message layer of the server: a closed
// vocabulary of methods, protocol versions and statuses, a line-oriented
// request parser, and a response serializer with Content-Length framing.
//
// # Thread Safety
//
// Parsers and Encoders are owned by a single connection and are not safe for
// concurrent use. Requests are immutable once built and may be shared freely.
//
// # APIs
//
//   - ParseRequest/NewParser - read one request from an io.Reader
//   - NewHTMLResponse - build a text/html response with framing headers
//   - Render/Write/NewEncoder - serialize a response to wire bytes
//   - Parse/ParseReader/RequestToNode/NodeToRequest - shape-core AST view of a request
package http

import (
	"strconv"
)

// Method is a request method accepted by the server.
type Method uint8

const (
	MethodGet Method = iota + 1
	MethodPost
)

// ParseMethod converts a request-line token into a Method. The match is
// exact and case-sensitive; any other token fails with ErrUnsupportedMethod.
func ParseMethod(token string) (Method, error) {
	switch token {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	}
	return 0, &ParseError{Kind: ErrUnsupportedMethod, Token: token}
}

// String returns the wire token of the method.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	}
	return "Method(" + strconv.Itoa(int(m)) + ")"
}

// ProtocolVersion is the protocol token of a request line. It is only echoed
// back in the response; no version-specific behavior exists.
type ProtocolVersion uint8

const (
	ProtoHTTP11 ProtocolVersion = iota + 1
	ProtoHTTP2
)

// ParseProtocol converts a request-line token into a ProtocolVersion.
// Any token other than "HTTP/1.1" or "HTTP/2" fails with ErrUnsupportedProtocol.
func ParseProtocol(token string) (ProtocolVersion, error) {
	switch token {
	case "HTTP/1.1":
		return ProtoHTTP11, nil
	case "HTTP/2":
		return ProtoHTTP2, nil
	}
	return 0, &ParseError{Kind: ErrUnsupportedProtocol, Token: token}
}

// String renders the protocol as its wire token. ParseProtocol(p.String()) == p.
func (p ProtocolVersion) String() string {
	switch p {
	case ProtoHTTP11:
		return "HTTP/1.1"
	case ProtoHTTP2:
		return "HTTP/2"
	}
	return "ProtocolVersion(" + strconv.Itoa(int(p)) + ")"
}

// Status is a response status with a fixed reason phrase.
type Status uint8

const (
	StatusOK Status = iota + 1
	StatusNotFound
)

// Code returns the numeric status code.
func (s Status) Code() int {
	switch s {
	case StatusOK:
		return 200
	case StatusNotFound:
		return 404
	}
	return 0
}

// Reason returns the reason phrase.
func (s Status) Reason() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNotFound:
		return "Not Found"
	}
	return ""
}

// String returns the status as it appears on the status line, e.g. "200 OK".
func (s Status) String() string {
	switch s {
	case StatusOK, StatusNotFound:
		return strconv.Itoa(s.Code()) + " " + s.Reason()
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// Headers maps header names to values. Names are case-sensitive and a later
// Set for the same name replaces the earlier value.
type Headers map[string]string

// Get returns the value for name and whether it was present.
func (h Headers) Get(name string) (string, bool) {
	v, ok := h[name]
	return v, ok
}

// Set stores value under name, replacing any previous value.
func (h Headers) Set(name, value string) {
	h[name] = value
}

// Clone returns a copy of the headers. A nil Headers clones to an empty map.
func (h Headers) Clone() Headers {
	clone := make(Headers, len(h))
	for k, v := range h {
		clone[k] = v
	}
	return clone
}

// Request is a parsed HTTP request. It is immutable: the header map is
// copied on construction and only copies are handed out.
type Request struct {
	method   Method
	path     string
	protocol ProtocolVersion
	headers  Headers
}

// NewRequest builds a Request. headers may be nil.
func NewRequest(method Method, path string, protocol ProtocolVersion, headers Headers) *Request {
	return &Request{
		method:   method,
		path:     path,
		protocol: protocol,
		headers:  headers.Clone(),
	}
}

// Method returns the request method.
func (r *Request) Method() Method { return r.method }

// Path returns the raw request-target, exactly as received.
func (r *Request) Path() string { return r.path }

// Protocol returns the protocol version of the request line.
func (r *Request) Protocol() ProtocolVersion { return r.protocol }

// Header returns the value of the named header and whether it was sent.
func (r *Request) Header(name string) (string, bool) { return r.headers.Get(name) }

// Headers returns a copy of the request headers.
func (r *Request) Headers() Headers { return r.headers.Clone() }

// Body is the set of textual body representations a Response can carry.
type Body interface {
	~string | ~[]byte
}

// Response is an HTTP response ready to be serialized.
type Response[T Body] struct {
	Status   Status
	Protocol ProtocolVersion
	Headers  Headers
	Body     T
}

// NewHTMLResponse builds a text/html response. Content-Type and
// Content-Length (the byte length of the UTF-8 encoded body) are always set.
func NewHTMLResponse[T Body](status Status, protocol ProtocolVersion, body T) *Response[T] {
	return &Response[T]{
		Status:   status,
		Protocol: protocol,
		Headers: Headers{
			"Content-Type":   "text/html",
			"Content-Length": strconv.Itoa(len(body)),
		},
		Body: body,
	}
}
