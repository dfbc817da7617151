package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// NewStaticHandler serves the frontend from dir. Unknown paths fall back to
// index.html so client side routes load the app.
func NewStaticHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if name != "/" {
			if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}
		http.ServeFile(w, r, index)
	}
}
