// Package middleware holds HTTP middleware specific to the storefront.
package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

const assetCacheControl = "public, max-age=604800, stale-while-revalidate=86400"

// Assets serves files from a public directory with Cache-Control, Vary and
// ETag handling. The file set and its ETags are fixed when Assets is built.
type Assets struct {
	etags map[string]string
	files http.Handler
}

// NewAssets indexes dir. A missing directory yields an empty set.
func NewAssets(dir string) *Assets {
	etags := map[string]string{}
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		et, err := fileETag(p)
		if err != nil {
			return nil
		}
		if rel, err := filepath.Rel(dir, p); err == nil {
			etags["/"+filepath.ToSlash(rel)] = et
		}
		return nil
	})
	return &Assets{etags: etags, files: http.FileServer(http.Dir(dir))}
}

// Has reports whether urlPath names an indexed file.
func (a *Assets) Has(urlPath string) bool {
	_, ok := a.etags[path.Clean("/"+urlPath)]
	return ok
}

// Len is the number of indexed files.
func (a *Assets) Len() int { return len(a.etags) }

// ServeHTTP serves the file named by the request path.
func (a *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("Cache-Control", assetCacheControl)
	if et := a.etags[path.Clean("/"+r.URL.Path)]; et != "" {
		w.Header().Set("ETag", et)
		if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	a.files.ServeHTTP(w, r)
}

// Middleware answers GET and HEAD requests for indexed files and passes
// everything else to next.
func (a *Assets) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if (r.Method == http.MethodGet || r.Method == http.MethodHead) && a.Has(r.URL.Path) {
			a.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func fileETag(p string) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
