package http

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-webserver/internal/tokenizer"
)

// Option configures a Parser.
type Option func(*Parser)

// WithStrictHeaders makes header lines with an empty value ("X-Empty:")
// fail with ErrMissingHeaderValue. By default they yield an empty value.
func WithStrictHeaders(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// Parser reads a single request from a line-oriented stream.
// A Parser is owned by one connection and is not safe for concurrent use.
type Parser struct {
	r      *bufio.Reader
	line   int // 1-indexed number of the last line read
	strict bool
}

// NewParser creates a parser reading from r. If r is already a
// *bufio.Reader it is used directly.
func NewParser(r io.Reader, opts ...Option) *Parser {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	p := &Parser{r: br}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseRequest reads one request from r.
func ParseRequest(r io.Reader, opts ...Option) (*Request, error) {
	return NewParser(r, opts...).ParseRequest()
}

// ParseRequest parses "METHOD PATH VERSION" followed by header lines up to
// an empty line or the end of the stream. It reads no body.
func (p *Parser) ParseRequest() (*Request, error) {
	requestLine, ok, err := p.readLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newParseError(ErrEmptyRequest, "", 0)
	}

	method, path, protocol, err := p.parseRequestLine(requestLine)
	if err != nil {
		return nil, err
	}

	headers, err := p.parseHeaders()
	if err != nil {
		return nil, err
	}

	return &Request{
		method:   method,
		path:     path,
		protocol: protocol,
		headers:  headers,
	}, nil
}

// parseRequestLine splits the line on whitespace runs. Tokens after the
// third are ignored.
func (p *Parser) parseRequestLine(line string) (Method, string, ProtocolVersion, error) {
	fields := tokenizer.Fields(line)

	if len(fields) < 1 {
		return 0, "", 0, newParseError(ErrMissingMethod, "", p.line)
	}
	method, err := ParseMethod(fields[0])
	if err != nil {
		return 0, "", 0, p.atLine(err)
	}

	if len(fields) < 2 {
		return 0, "", 0, newParseError(ErrMissingPath, "", p.line)
	}
	path := fields[1]

	if len(fields) < 3 {
		return 0, "", 0, newParseError(ErrMissingProtocol, "", p.line)
	}
	protocol, err := ParseProtocol(fields[2])
	if err != nil {
		return 0, "", 0, p.atLine(err)
	}

	return method, path, protocol, nil
}

// parseHeaders reads "Name: value" lines until a zero-length line or the
// end of the stream. A whitespace-only line is not a terminator.
func (p *Parser) parseHeaders() (Headers, error) {
	headers := make(Headers)

	for {
		line, ok, err := p.readLine()
		if err != nil {
			return nil, err
		}
		if !ok || line == "" {
			return headers, nil
		}

		name, value, found := strings.Cut(line, ":")
		if !found || name == "" {
			return nil, newParseError(ErrMissingHeaderName, line, p.line)
		}

		value = strings.TrimSpace(value)
		if value == "" && p.strict {
			return nil, newParseError(ErrMissingHeaderValue, name, p.line)
		}

		headers.Set(name, value)
	}
}

// readLine reads bytes up to LF, stripping LF or CRLF. ok is false once the
// stream is exhausted; a final line without a terminator is still returned.
func (p *Parser) readLine() (line string, ok bool, err error) {
	s, err := p.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, &ParseError{Kind: ErrIO, Line: p.line + 1, Err: err}
		}
		if s == "" {
			return "", false, nil
		}
	}
	p.line++

	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	if !utf8.ValidString(s) {
		return "", false, &ParseError{Kind: ErrIO, Line: p.line, Err: errInvalidUTF8}
	}
	return s, true, nil
}

// atLine stamps the current line number on a *ParseError from the
// Method/ProtocolVersion converters.
func (p *Parser) atLine(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Line = p.line
	}
	return err
}
