package handlers

import (
	"log"
	"net/http"

	"jambanganBack/internal/services"
)

type MapHandler struct {
	Service *services.MapService
}

func (h *MapHandler) GetMaps(w http.ResponseWriter, r *http.Request) {
	annotations, err := h.Service.GetAllAnnotations(r.Context())
	if err != nil {
		log.Printf("GetMaps error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"mapsData": annotations})
}

func (h *MapHandler) GetMapsAll(w http.ResponseWriter, r *http.Request) {
	points, err := h.Service.GetMapPoints(r.Context())
	if err != nil {
		log.Printf("GetMapsAll error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"coordinates": points})
}

// GetMapsByUser renders the caller's own annotations; identity comes from
// the verified token, not the path parameter.
func (h *MapHandler) GetMapsByUser(w http.ResponseWriter, r *http.Request) {
	userID := contextInt(r, "user_id")
	points, err := h.Service.GetMapPointsByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("GetMapsByUser error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"coordinates": points})
}
