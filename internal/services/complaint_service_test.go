package services

import (
	"testing"

	"jambanganBack/internal/models"
)

func TestNormalizeComplaintStatus(t *testing.T) {
	if got := normalizeComplaintStatus(""); got != models.StatusAwaitingResponse {
		t.Errorf("empty status should default to %q, got %q", models.StatusAwaitingResponse, got)
	}
	if got := normalizeComplaintStatus("   "); got != models.StatusAwaitingResponse {
		t.Errorf("blank status should default to %q, got %q", models.StatusAwaitingResponse, got)
	}
	if got := normalizeComplaintStatus("Selesai"); got != "Selesai" {
		t.Errorf("explicit status should pass through, got %q", got)
	}
}

func TestJakartaNowFormat(t *testing.T) {
	stamp := jakartaNow()
	if len(stamp) != len("2006-01-02 15:04:05") {
		t.Fatalf("unexpected timestamp shape: %q", stamp)
	}
}
