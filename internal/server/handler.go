package server

import (
	"io"
	"net"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-webserver/pkg/http"
)

// PageReader returns the content of a logical page.
type PageReader interface {
	ReadPage(name string) ([]byte, error)
}

// Handler serves exactly one request per connection.
type Handler struct {
	pages PageReader
	log   zerolog.Logger
	opts  []http.Option
}

// NewHandler returns a Handler serving pages. opts are passed to the
// request parser.
func NewHandler(pages PageReader, log zerolog.Logger, opts ...http.Option) *Handler {
	return &Handler{
		pages: pages,
		log:   log,
		opts:  opts,
	}
}

// ServeConn parses one request from conn, routes it and writes the
// response. Failures are logged and end only this connection; nothing is
// written after a parse failure. conn is closed on every return path.
func (h *Handler) ServeConn(conn io.ReadWriteCloser) {
	log := h.connLogger(conn)
	defer func() {
		if err := conn.Close(); err != nil {
			log.Debug().Err(err).Msg("close failed")
		}
	}()

	req, err := http.ParseRequest(conn, h.opts...)
	if err != nil {
		log.Error().Err(err).Msg("request parse failed")
		return
	}
	log.Debug().
		Stringer("method", req.Method()).
		Str("path", req.Path()).
		Stringer("protocol", req.Protocol()).
		Interface("headers", req.Headers()).
		Msg("received request")

	page, status := Route(req.Method(), req.Path())

	data, err := h.pages.ReadPage(page)
	if err != nil {
		log.Error().Err(err).Str("page", page).Msg("failed to read page")
		return
	}

	resp := http.NewHTMLResponse(status, req.Protocol(), data)
	if err := http.Write(resp, conn); err != nil {
		log.Error().Err(err).Msg("failed to send response")
		return
	}

	log.Info().
		Stringer("method", req.Method()).
		Str("path", req.Path()).
		Int("status", status.Code()).
		Int("bytes", len(data)).
		Msg("served")
}

func (h *Handler) connLogger(conn io.ReadWriteCloser) zerolog.Logger {
	ctx := h.log.With().Str("conn", uuid.NewString())
	if c, ok := conn.(net.Conn); ok && c.RemoteAddr() != nil {
		ctx = ctx.Str("remote", c.RemoteAddr().String())
	}
	return ctx.Logger()
}
