package http

import (
	"maps"
	"slices"
	"strconv"
)

// appendResponse serializes a Response to wire format.
// It appends "VERSION STATUS REASON\r\n" followed by headers, an empty line
// and the body.
func appendResponse[T Body](buf []byte, resp *Response[T]) []byte {
	buf = appendStatusLine(buf, resp.Protocol, resp.Status)
	buf = appendHeaders(buf, resp.Headers)

	// Auto-set Content-Length if body present and header absent
	if _, ok := resp.Headers["Content-Length"]; !ok && len(resp.Body) > 0 {
		buf = append(buf, "Content-Length: "...)
		buf = strconv.AppendInt(buf, int64(len(resp.Body)), 10)
		buf = appendCRLF(buf)
	}

	buf = appendCRLF(buf) // empty line before body
	buf = append(buf, string(resp.Body)...)

	return buf
}

// appendHeaders appends all headers in "Name: Value\r\n" format, sorted by
// name so that equal responses render to equal bytes.
func appendHeaders(buf []byte, headers Headers) []byte {
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		buf = appendHeader(buf, name, headers[name])
	}
	return buf
}
