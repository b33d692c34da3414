package http

import (
	"strings"
	"testing"
)

func BenchmarkRender_HTML(b *testing.B) {
	resp := NewHTMLResponse(StatusOK, ProtoHTTP11, "<!DOCTYPE html><html><body><h1>Hello!</h1></body></html>")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(resp)
	}
}

func BenchmarkRender_LargeBody(b *testing.B) {
	resp := NewHTMLResponse(StatusNotFound, ProtoHTTP2, []byte(strings.Repeat("<p>x</p>", 1024)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Render(resp)
	}
}
