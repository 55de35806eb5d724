package http

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// SPAHandler serves the embedded dashboard page and its assets. Paths without
// a file extension fall back to index.html; missing assets are 404.
type SPAHandler struct {
	fileSystem http.FileSystem
	indexFile  []byte
}

// NewSPAHandler creates a new SPA handler
func NewSPAHandler(filesystem http.FileSystem) (*SPAHandler, error) {
	indexFile, err := filesystem.Open("/index.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open index.html for SPA handler")
	}
	defer indexFile.Close()

	indexContent, err := io.ReadAll(indexFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read index.html content")
	}

	return &SPAHandler{
		fileSystem: filesystem,
		indexFile:  indexContent,
	}, nil
}

// ServeHTTP implements the http.Handler interface
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cleanPath := path.Clean("/" + r.URL.Path)
	if cleanPath == "/" || cleanPath == "/index.html" {
		h.serveIndex(w)
		return
	}

	file, err := h.fileSystem.Open(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.serveNotFound(w, r, cleanPath)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if stat.IsDir() {
		h.serveIndex(w)
		return
	}

	if contentType := getContentType(cleanPath); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	// embedded files carry no modification time
	http.ServeContent(w, r, cleanPath, time.Time{}, file)
}

func (h *SPAHandler) serveNotFound(w http.ResponseWriter, r *http.Request, cleanPath string) {
	if path.Ext(cleanPath) != "" {
		http.NotFound(w, r)
		return
	}
	h.serveIndex(w)
}

func (h *SPAHandler) serveIndex(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.indexFile)
}

var mimeTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

// getContentType returns the content type for common file extensions
func getContentType(filePath string) string {
	return mimeTypes[strings.ToLower(path.Ext(filePath))]
}
