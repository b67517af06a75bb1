package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"jambanganBack/internal/models"
	"jambanganBack/internal/services"
	"jambanganBack/utils"
)

type ResponseHandler struct {
	Service *services.ResponseService
	Storage utils.FileStorage
	Events  Broadcaster
}

// CreateResponse stores an admin reply to a complaint. The image is
// optional; a supplied status also transitions the parent complaint.
func (h *ResponseHandler) CreateResponse(w http.ResponseWriter, r *http.Request) {
	complaintIDStr := getParam(r, "complaintId")
	complaintID, err := strconv.Atoi(complaintIDStr)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid complaint ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	data, originalName, err := readFormFile(r, "image_url", false)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	var imageURL string
	if data != nil {
		imageURL, err = h.Storage.Save(data, newUploadName(originalName), "images")
		if err != nil {
			log.Printf("CreateResponse upload error: %v", err)
			errorJSON(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	text := r.FormValue("text")
	status := r.FormValue("status")

	if err := h.Service.CreateResponse(r.Context(), complaintID, text, status, imageURL); err != nil {
		if errors.Is(err, models.ErrComplaintNotFound) {
			errorJSON(w, http.StatusNotFound, "Complaint not found")
			return
		}
		log.Printf("CreateResponse error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	if h.Events != nil {
		h.Events.Broadcast("response_created", map[string]any{
			"complaint_id": complaintID,
			"status":       status,
		})
	}

	message := "Response added successfully"
	if status != "" {
		message = "Response and status updated successfully"
	}
	errorJSON(w, http.StatusCreated, message)
}

func (h *ResponseHandler) GetResponsesByComplaint(w http.ResponseWriter, r *http.Request) {
	complaintIDStr := getParam(r, "complaintId")
	complaintID, err := strconv.Atoi(complaintIDStr)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid complaint ID")
		return
	}

	responses, err := h.Service.GetResponsesByComplaintID(r.Context(), complaintID)
	if err != nil {
		log.Printf("GetResponsesByComplaint error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"responses": responses})
}

func (h *ResponseHandler) GetAllResponses(w http.ResponseWriter, r *http.Request) {
	responses, err := h.Service.GetAllResponses(r.Context())
	if err != nil {
		log.Printf("GetAllResponses error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"responses": responses})
}
