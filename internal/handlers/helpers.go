package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
)

// Broadcaster fans out an event to connected live-feed clients. Implemented
// by the websocket manager; handlers treat a nil broadcaster as "feature
// off".
type Broadcaster interface {
	Broadcast(event string, payload any)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func errorJSON(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	return r.URL.Query().Get(name)
}

// newUploadName gives a stored file a collision-free name while keeping the
// original extension.
func newUploadName(originalName string) string {
	return uuid.New().String() + filepath.Ext(originalName)
}

func contextInt(r *http.Request, key string) int {
	v, _ := r.Context().Value(key).(int)
	return v
}

func contextString(r *http.Request, key string) string {
	v, _ := r.Context().Value(key).(string)
	return v
}
