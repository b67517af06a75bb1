package models

import "encoding/json"

// MapAnnotation is a tblmaps row. Coordinates holds the geometry exactly as
// stored (a JSON document), so reads round-trip what the client submitted.
type MapAnnotation struct {
	ID           int             `json:"idmap"`
	ComplaintID  int             `json:"complaint_id"`
	PopupContent string          `json:"popup_content"`
	Coordinates  json.RawMessage `json:"coordinates"`
}

// MapPoint is the rendering payload returned by the map endpoints.
type MapPoint struct {
	Coordinates  json.RawMessage `json:"coordinates"`
	PopupContent string          `json:"popup_content"`
}
