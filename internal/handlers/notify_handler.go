package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"jambanganBack/internal/services"
)

type NotifyHandler struct {
	Service *services.NotifyService
}

// RegisterToken stores a device push token for the authenticated account.
func (h *NotifyHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		errorJSON(w, http.StatusBadRequest, "Token is required")
		return
	}

	userID := contextInt(r, "user_id")
	if err := h.Service.RegisterToken(r.Context(), userID, req.Token); err != nil {
		log.Printf("RegisterToken error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	errorJSON(w, http.StatusCreated, "Token registered")
}

func (h *NotifyHandler) RemoveToken(w http.ResponseWriter, r *http.Request) {
	token := getParam(r, "token")
	if token == "" {
		errorJSON(w, http.StatusBadRequest, "Token is required")
		return
	}

	if err := h.Service.RemoveToken(r.Context(), token); err != nil {
		log.Printf("RemoveToken error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	errorJSON(w, http.StatusOK, "Token removed")
}
