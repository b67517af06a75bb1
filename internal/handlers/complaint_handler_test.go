package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordingStorage struct {
	saves int
}

func (s *recordingStorage) Save(data []byte, fileName, folder string) (string, error) {
	s.saves++
	return "/uploads/" + fileName, nil
}

// A rejected submission must not leave a stored file behind.
func TestCreateComplaintInvalidCoordinatesSkipsUpload(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "photo.jpg")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write([]byte("jpeg-bytes")); err != nil {
		t.Fatalf("writing to form file failed: %v", err)
	}
	if err := writer.WriteField("coordinates", "{broken"); err != nil {
		t.Fatalf("WriteField failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/complaints", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	store := &recordingStorage{}
	h := &ComplaintHandler{Storage: store}

	rr := httptest.NewRecorder()
	h.CreateComplaint(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid coordinates, got %d", rr.Code)
	}
	if store.saves != 0 {
		t.Errorf("expected no stored files, got %d", store.saves)
	}
}
