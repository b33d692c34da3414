package server

import (
	"bytes"
	"errors"
	"io"
	"net"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-webserver/internal/pages"
	"github.com/shapestone/shape-webserver/pkg/http"
)

const (
	helloHTML    = "<h1>Hello!</h1>"
	notFoundHTML = "<h1>Oops!</h1>"
)

func testPages() *pages.Store {
	return pages.NewStore(fstest.MapFS{
		"hello.html": {Data: []byte(helloHTML)},
		"404.html":   {Data: []byte(notFoundHTML)},
	}, nil)
}

// fakeConn reads a fixed request and records what is written and closed.
type fakeConn struct {
	r        io.Reader
	out      bytes.Buffer
	writeErr error
	closed   int
}

func newFakeConn(request string) *fakeConn {
	return &fakeConn{r: strings.NewReader(request)}
}

func (c *fakeConn) Read(p []byte) (int, error) { return c.r.Read(p) }

func (c *fakeConn) Write(p []byte) (int, error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}
	return c.out.Write(p)
}

func (c *fakeConn) Close() error {
	c.closed++
	return nil
}

type failingPages struct{ err error }

func (p failingPages) ReadPage(string) ([]byte, error) { return nil, p.err }

func TestServeConn_Hello(t *testing.T) {
	conn := newFakeConn("GET / HTTP/1.1\r\nHost: localhost:7878\r\n\r\n")
	NewHandler(testPages(), zerolog.Nop()).ServeConn(conn)

	want := "HTTP/1.1 200 OK\r\nContent-Length: 15\r\nContent-Type: text/html\r\n\r\n" + helloHTML
	require.Equal(t, want, conn.out.String())
	require.Equal(t, 1, conn.closed)
}

func TestServeConn_NotFound(t *testing.T) {
	tests := []struct {
		name    string
		request string
		status  string
	}{
		{"unknown path", "GET /missing HTTP/1.1\r\n\r\n", "HTTP/1.1 404 Not Found"},
		{"post to root", "POST / HTTP/1.1\r\n\r\n", "HTTP/1.1 404 Not Found"},
		{"HTTP/2 echoed", "GET /x HTTP/2\r\n\r\n", "HTTP/2 404 Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newFakeConn(tt.request)
			NewHandler(testPages(), zerolog.Nop()).ServeConn(conn)

			out := conn.out.String()
			require.True(t, strings.HasPrefix(out, tt.status+"\r\n"), "response = %q", out)
			require.True(t, strings.HasSuffix(out, "\r\n\r\n"+notFoundHTML), "response = %q", out)
			require.Contains(t, out, "Content-Length: 14\r\n")
			require.Equal(t, 1, conn.closed)
		})
	}
}

func TestServeConn_ParseFailureSendsNothing(t *testing.T) {
	for _, request := range []string{
		"",
		"FOO / HTTP/1.1\r\n\r\n",
		"GET / HTTP/1.0\r\n\r\n",
		"GET /\r\n\r\n",
		"GET / HTTP/1.1\r\nno colon here\r\n\r\n",
	} {
		var logs bytes.Buffer
		conn := newFakeConn(request)
		NewHandler(testPages(), zerolog.New(&logs)).ServeConn(conn)

		require.Empty(t, conn.out.String(), "request %q", request)
		require.Equal(t, 1, conn.closed, "request %q", request)
		require.Contains(t, logs.String(), "request parse failed")
	}
}

func TestServeConn_StrictHeaders(t *testing.T) {
	conn := newFakeConn("GET / HTTP/1.1\r\nX-Empty:\r\n\r\n")
	NewHandler(testPages(), zerolog.Nop()).ServeConn(conn)
	require.NotEmpty(t, conn.out.String())

	conn = newFakeConn("GET / HTTP/1.1\r\nX-Empty:\r\n\r\n")
	NewHandler(testPages(), zerolog.Nop(), http.WithStrictHeaders(true)).ServeConn(conn)
	require.Empty(t, conn.out.String())
}

func TestServeConn_PageFailureSendsNothing(t *testing.T) {
	var logs bytes.Buffer
	conn := newFakeConn("GET / HTTP/1.1\r\n\r\n")
	NewHandler(failingPages{err: pages.ErrPageNotFound}, zerolog.New(&logs)).ServeConn(conn)

	require.Empty(t, conn.out.String())
	require.Equal(t, 1, conn.closed)
	require.Contains(t, logs.String(), "failed to read page")
}

func TestServeConn_WriteFailureIsLocal(t *testing.T) {
	var logs bytes.Buffer
	conn := newFakeConn("GET / HTTP/1.1\r\n\r\n")
	conn.writeErr = errors.New("broken pipe")
	NewHandler(testPages(), zerolog.New(&logs)).ServeConn(conn)

	require.Equal(t, 1, conn.closed)
	require.Contains(t, logs.String(), "failed to send response")
	require.Contains(t, logs.String(), "broken pipe")
}

func TestServeConn_Pipe(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		NewHandler(testPages(), zerolog.Nop()).ServeConn(server)
	}()

	require.NoError(t, client.SetDeadline(time.Now().Add(5*time.Second)))
	_, err := client.Write([]byte("GET / HTTP/2\r\nHost: x\r\n\r\n"))
	require.NoError(t, err)

	resp, err := io.ReadAll(client)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(resp), "HTTP/2 200 OK\r\n"), "response = %q", resp)
	require.True(t, strings.HasSuffix(string(resp), helloHTML))

	<-done
}
