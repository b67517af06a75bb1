package services

import (
	"encoding/json"
	"testing"

	"jambanganBack/internal/models"
)

func TestBuildMapPointsDropsInvalidGeometry(t *testing.T) {
	annotations := []models.MapAnnotation{
		{Coordinates: json.RawMessage(`[112.63, -7.32]`), PopupContent: "jalan berlubang"},
		{Coordinates: json.RawMessage(``), PopupContent: "kosong"},
		{Coordinates: json.RawMessage(`{broken`), PopupContent: "rusak"},
		{Coordinates: json.RawMessage(`{"lat":-7.3,"lng":112.6}`), PopupContent: "objek"},
	}

	points := buildMapPoints(annotations)
	if len(points) != 2 {
		t.Fatalf("expected 2 renderable points, got %d", len(points))
	}
	if points[0].PopupContent != "jalan berlubang" {
		t.Errorf("unexpected first popup: %q", points[0].PopupContent)
	}
	if points[1].PopupContent != "objek" {
		t.Errorf("unexpected second popup: %q", points[1].PopupContent)
	}
}

func TestBuildMapPointsEmptyInput(t *testing.T) {
	points := buildMapPoints(nil)
	if points == nil {
		t.Fatal("expected a non-nil slice so the JSON body is [] not null")
	}
	if len(points) != 0 {
		t.Fatalf("expected no points, got %d", len(points))
	}
}
