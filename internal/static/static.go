// Package static serves files from a fixed document root.
package static

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// Root is a document root resolved once at startup.
type Root struct {
	dir    string
	files  http.Handler
	logger *slog.Logger
}

func NewRoot(dir string, logger *slog.Logger) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve document root %q: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat document root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("document root %s is not a directory", abs)
	}

	return &Root{
		dir:    abs,
		files:  http.FileServer(http.Dir(abs)),
		logger: logger,
	}, nil
}

func (root *Root) Dir() string {
	return root.dir
}

// ServeHTTP serves the request path as a file under the root, with whatever
// status and content type the file server picks.
func (root *Root) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	root.files.ServeHTTP(w, r)
}

// Rewrite serves target in place of the requested path.
func (root *Root) Rewrite(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r2 := r.Clone(r.Context())
		r2.URL.Path = target
		r2.URL.RawPath = ""
		root.files.ServeHTTP(w, r2)
	}
}

// Page serves a named HTML file directly. A missing file still answers 200 with
// the literal fallback body instead of a 404.
func (root *Root) Page(name, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := os.ReadFile(filepath.Join(root.dir, name))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				root.logger.Error("failed to read page", "error", err, "page", name)
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			body = []byte(fallback)
		}

		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			root.logger.Error("failed to write page", "error", err, "page", name)
		}
	}
}
