package http

import (
	"fmt"
	"io"
)

// Encoder writes HTTP responses to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format encoding of v to the stream.
// v must be a *Response[string] or *Response[[]byte].
func (enc *Encoder) Encode(v interface{}) error {
	var data []byte
	switch resp := v.(type) {
	case *Response[string]:
		data = Render(resp)
	case *Response[[]byte]:
		data = Render(resp)
	default:
		return fmt.Errorf("http: Encode unsupported type %T (expected *Response[string] or *Response[[]byte])", v)
	}
	return enc.write(data)
}

// write hands data to the underlying writer in a single call. A short
// write is reported as io.ErrShortWrite; nothing is retried.
func (enc *Encoder) write(data []byte) error {
	n, err := enc.w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("http: write response: %w", err)
	}
	return nil
}

// Write renders resp and writes it to w. The response is consumed: callers
// should not reuse it afterwards.
func Write[T Body](resp *Response[T], w io.Writer) error {
	return NewEncoder(w).write(Render(resp))
}
