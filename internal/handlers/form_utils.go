package handlers

import (
	"errors"
	"io"
	"net/http"
)

const maxUploadSize = 32 << 20 // 32MB

// readFormFile reads the uploaded file under the given form key. required
// distinguishes "client forgot the file" from "no file, and that is fine".
func readFormFile(r *http.Request, key string, required bool) (data []byte, originalName string, err error) {
	file, header, err := r.FormFile(key)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) && !required {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return data, header.Filename, nil
}
