package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store := &LocalStorage{Dir: dir}

	url, err := store.Save([]byte("jpeg-bytes"), "abc123.jpg", "images")
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if url != "/uploads/abc123.jpg" {
		t.Errorf("unexpected public URL: %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "abc123.jpg"))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestLocalStorageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := &LocalStorage{Dir: dir}

	if _, err := store.Save([]byte("x"), "a.jpg", "images"); err != nil {
		t.Fatalf("Save should create the directory, got: %v", err)
	}
}
