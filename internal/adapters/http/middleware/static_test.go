package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/middleware"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestStatic(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), "<html>app</html>")
	writeFile(t, filepath.Join(root, "assets", "app.js"), "console.log(1)")
	if err := os.MkdirAll(filepath.Join(root, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	h := middleware.Static(root)(okHandler("next"))

	tests := []struct {
		name     string
		method   string
		path     string
		wantBody string
	}{
		{name: "existing file", method: http.MethodGet, path: "/assets/app.js", wantBody: "console.log(1)"},
		{name: "root serves index", method: http.MethodGet, path: "/", wantBody: "<html>app</html>"},
		{name: "missing file falls through", method: http.MethodGet, path: "/api/todos", wantBody: "next"},
		{name: "dir without index falls through", method: http.MethodGet, path: "/empty", wantBody: "next"},
		{name: "traversal stays inside root", method: http.MethodGet, path: "/../../etc/passwd", wantBody: "next"},
		{name: "non-GET falls through", method: http.MethodPost, path: "/assets/app.js", wantBody: "next"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := serve(h, httptest.NewRequest(tt.method, tt.path, http.NoBody))
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
