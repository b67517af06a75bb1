package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"jambanganBack/internal/models"
	"jambanganBack/internal/services"
	"jambanganBack/utils"
)

type ComplaintHandler struct {
	Service *services.ComplaintService
	Storage utils.FileStorage
	Events  Broadcaster
}

// CreateComplaint accepts a multipart submission with a mandatory photo,
// stores the image, and writes the complaint plus its map annotation.
func (h *ComplaintHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	// Validate the form before touching storage so a rejected request never
	// leaves an orphaned file behind.
	coordinates := []byte(r.FormValue("coordinates"))
	if len(coordinates) > 0 && !json.Valid(coordinates) {
		errorJSON(w, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	data, originalName, err := readFormFile(r, "image", true)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Image is required")
		return
	}

	imageURL, err := h.Storage.Save(data, newUploadName(originalName), "images")
	if err != nil {
		log.Printf("CreateComplaint upload error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	c := models.Complaint{
		Text:       r.FormValue("text"),
		Alamat:     r.FormValue("alamat"),
		ImageURL:   imageURL,
		Type:       r.FormValue("type"),
		Status:     r.FormValue("status"),
		Keterangan: r.FormValue("keterangan"),
		UserID:     contextInt(r, "user_id"),
	}

	id, err := h.Service.CreateComplaint(r.Context(), c, r.FormValue("popup_content"), coordinates)
	if err != nil {
		log.Printf("CreateComplaint error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	if h.Events != nil {
		h.Events.Broadcast("complaint_created", map[string]any{
			"idcomplaint": id,
			"type":        c.Type,
			"alamat":      c.Alamat,
		})
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message":      "Complaint and map data submitted successfully",
		"lastInsertId": id,
	})
}

func (h *ComplaintHandler) GetAllComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.Service.GetAllComplaints(r.Context())
	if err != nil {
		log.Printf("GetAllComplaints error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}
	respondJSON(w, http.StatusOK, complaints)
}

func (h *ComplaintHandler) GetComplaintByID(w http.ResponseWriter, r *http.Request) {
	idStr := getParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid ID")
		return
	}

	complaint, err := h.Service.GetComplaintByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrComplaintNotFound) {
			errorJSON(w, http.StatusNotFound, "Complaint not found")
			return
		}
		log.Printf("GetComplaintByID error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}

	respondJSON(w, http.StatusOK, complaint)
}

func (h *ComplaintHandler) GetComplaintsByUser(w http.ResponseWriter, r *http.Request) {
	userIDStr := getParam(r, "userId")
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	complaints, err := h.Service.GetComplaintsByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("GetComplaintsByUser error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}
	respondJSON(w, http.StatusOK, complaints)
}

// GetReportData aggregates counters across the whole platform (admin view).
func (h *ComplaintHandler) GetReportData(w http.ResponseWriter, r *http.Request) {
	data, err := h.Service.GetReportData(r.Context(), nil)
	if err != nil {
		log.Printf("GetReportData error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// GetReportDataForUser counts for the authenticated account; the path
// parameter is deliberately ignored in favour of the token identity.
func (h *ComplaintHandler) GetReportDataForUser(w http.ResponseWriter, r *http.Request) {
	userID := contextInt(r, "user_id")
	data, err := h.Service.GetReportData(r.Context(), &userID)
	if err != nil {
		log.Printf("GetReportDataForUser error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server Error")
		return
	}
	respondJSON(w, http.StatusOK, data)
}
