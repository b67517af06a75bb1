package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func TestReadFormFileReturnsContent(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "photo.jpg")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write([]byte("jpeg-bytes")); err != nil {
		t.Fatalf("writing to form file failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/complaints", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}

	data, name, err := readFormFile(req, "image", true)
	if err != nil {
		t.Fatalf("readFormFile returned error: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("unexpected file content: %q", data)
	}
	if name != "photo.jpg" {
		t.Errorf("unexpected original name: %q", name)
	}
}

func TestReadFormFileMissingRequired(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("text", "no image here"); err != nil {
		t.Fatalf("WriteField failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/complaints", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}

	if _, _, err := readFormFile(req, "image", true); err == nil {
		t.Fatal("expected error when required file is absent")
	}
}

func TestReadFormFileMissingOptional(t *testing.T) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("text", "reply without photo"); err != nil {
		t.Fatalf("WriteField failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing writer failed: %v", err)
	}

	req := httptest.NewRequest("POST", "/responses", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(maxUploadSize); err != nil {
		t.Fatalf("ParseMultipartForm failed: %v", err)
	}

	data, name, err := readFormFile(req, "image_url", false)
	if err != nil {
		t.Fatalf("optional missing file should not error, got: %v", err)
	}
	if data != nil || name != "" {
		t.Errorf("expected empty result, got data=%v name=%q", data, name)
	}
}

func TestNewUploadNameKeepsExtension(t *testing.T) {
	name := newUploadName("foto jalan.JPG")
	if filepath.Ext(name) != ".JPG" {
		t.Errorf("expected .JPG extension preserved, got %q", name)
	}
	if name == newUploadName("foto jalan.JPG") {
		t.Error("expected distinct names for repeated uploads")
	}
}

func TestTokenCookieAttributes(t *testing.T) {
	c := buildTokenCookie("abc", 8*time.Hour)
	if c.Name != "token" || c.Value != "abc" {
		t.Fatalf("unexpected cookie identity: %s=%s", c.Name, c.Value)
	}
	if !c.HttpOnly || !c.Secure {
		t.Error("session cookie must be HttpOnly and Secure")
	}
	if c.MaxAge != int((8 * time.Hour).Seconds()) {
		t.Errorf("unexpected MaxAge: %d", c.MaxAge)
	}
	if c.Path != "/" {
		t.Errorf("unexpected Path: %q", c.Path)
	}

	cleared := clearTokenCookie()
	if cleared.MaxAge != -1 || cleared.Value != "" {
		t.Errorf("clearing cookie should expire it, got MaxAge=%d Value=%q", cleared.MaxAge, cleared.Value)
	}
}
