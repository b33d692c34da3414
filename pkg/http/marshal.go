package http

import (
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Render returns the wire-format encoding of resp:
//
//	<protocol> <status>\r\n<name>: <value>\r\n...\r\n<body>
//
// If the body is non-empty and Content-Length is absent, it is added.
// Render uses a sync.Pool buffer internally.
func Render[T Body](resp *Response[T]) []byte {
	bp := bufPool.Get().(*[]byte)
	buf := appendResponse((*bp)[:0], resp)

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result
}
