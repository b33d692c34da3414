// Package pages serves the static HTML pages the server responds with.
package pages

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Logical page names understood by a Store.
const (
	PageHello    = "hello"
	PageNotFound = "not_found"
)

// DefaultFiles maps the logical page names to file names.
var DefaultFiles = map[string]string{
	PageHello:    "hello.html",
	PageNotFound: "404.html",
}

// ErrPageNotFound is returned for unknown page names and missing files.
var ErrPageNotFound = errors.New("page not found")

//go:embed web_pages/*.html
var embedded embed.FS

// Store reads pages from a file system.
type Store struct {
	fsys  fs.FS
	files map[string]string
}

// NewStore returns a Store reading files from fsys. files maps logical
// page names to paths within fsys; nil means DefaultFiles.
func NewStore(fsys fs.FS, files map[string]string) *Store {
	if files == nil {
		files = DefaultFiles
	}
	return &Store{fsys: fsys, files: files}
}

// Embedded returns a Store over the pages compiled into the binary.
func Embedded() *Store {
	sub, err := fs.Sub(embedded, "web_pages")
	if err != nil {
		// web_pages is a fixed, valid path
		panic(err)
	}
	return NewStore(sub, nil)
}

// Dir returns a Store reading pages from the directory at path.
func Dir(path string) *Store {
	return NewStore(os.DirFS(path), nil)
}

// ReadPage returns the content of the named page.
func (s *Store) ReadPage(name string) ([]byte, error) {
	file, ok := s.files[name]
	if !ok {
		return nil, fmt.Errorf("pages: %q: %w", name, ErrPageNotFound)
	}

	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("pages: %q (%s): %w", name, file, ErrPageNotFound)
		}
		return nil, fmt.Errorf("pages: read %q: %w", name, err)
	}
	return data, nil
}
