package server

import (
	"github.com/shapestone/shape-webserver/internal/pages"
	"github.com/shapestone/shape-webserver/pkg/http"
)

// Route maps a request to the page to serve and its status. Only GET / is
// found; every other method and path gets the not-found page.
func Route(method http.Method, path string) (page string, status http.Status) {
	if method == http.MethodGet && path == "/" {
		return pages.PageHello, http.StatusOK
	}
	return pages.PageNotFound, http.StatusNotFound
}
