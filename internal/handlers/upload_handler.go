package handlers

import (
	"net/http"
	"path/filepath"
)

// UploadHandler serves files saved by the local storage backend. With the
// S3 backend images are served straight from the bucket and this handler
// simply 404s.
type UploadHandler struct {
	Dir string
}

func (h *UploadHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(getParam(r, "filename"))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		errorJSON(w, http.StatusBadRequest, "Invalid file name")
		return
	}
	http.ServeFile(w, r, filepath.Join(h.Dir, name))
}
