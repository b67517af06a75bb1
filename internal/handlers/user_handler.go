package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"jambanganBack/internal/models"
	"jambanganBack/internal/services"
)

type UserHandler struct {
	Service  *services.UserService
	TokenTTL time.Duration
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAllUsers(r.Context())
	if err != nil {
		log.Printf("GetUsers error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			errorJSON(w, http.StatusBadRequest, "Username already exists. Choose a different username.")
			return
		}
		log.Printf("CreateUser error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	errorJSON(w, http.StatusCreated, "User created successfully")
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpdateUser(r.Context(), id, req.Username, req.Password); err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			errorJSON(w, http.StatusBadRequest, "Username already exists. Choose a different username.")
			return
		}
		log.Printf("UpdateUser error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}

	errorJSON(w, http.StatusOK, "User updated successfully")
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.Service.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			errorJSON(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("DeleteUser error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}

	errorJSON(w, http.StatusOK, "User deleted successfully")
}

func (h *UserHandler) HasPosts(w http.ResponseWriter, r *http.Request) {
	userIDStr := getParam(r, "userId")
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	hasPosts, err := h.Service.HasPosts(r.Context(), userID)
	if err != nil {
		log.Printf("HasPosts error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"hasPosts": hasPosts})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			errorJSON(w, http.StatusUnauthorized, "Incorrect username or password.")
			return
		}
		log.Printf("Login error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}

	http.SetCookie(w, buildTokenCookie(resp.Token, h.TokenTTL))
	respondJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value("claims").(*models.Claims)
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Token has expired or is invalid")
		return
	}

	if err := h.Service.LogOut(r.Context(), claims); err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			errorJSON(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Logout error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}

	http.SetCookie(w, clearTokenCookie())
	respondJSON(w, http.StatusOK, map[string]string{"status": "Success"})
}

// Me reports the identity embedded in the verified token; no storage access.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "Success",
		"id":     contextInt(r, "user_id"),
		"name":   contextString(r, "username"),
		"level":  contextString(r, "level"),
	})
}

// buildTokenCookie makes the session cookie: HttpOnly and cross-site capable
// so the browser frontend on another origin can send it.
func buildTokenCookie(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func clearTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
