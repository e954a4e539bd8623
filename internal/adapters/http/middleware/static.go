package middleware

import (
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// Static serves GET and HEAD requests for files that exist under root.
// Directories are served only when they contain an index.html. Everything
// else falls through to next, so API routes and the SPA fallback still see
// requests for paths that are not on disk.
func Static(root string) func(http.Handler) http.Handler {
	fsys := os.DirFS(root)
	files := http.FileServerFS(fsys)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			if !servable(fsys, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			files.ServeHTTP(w, r)
		})
	}
}

func servable(fsys fs.FS, urlPath string) bool {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}

	info, err := fs.Stat(fsys, name)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	_, err = fs.Stat(fsys, path.Join(name, "index.html"))
	return err == nil
}
