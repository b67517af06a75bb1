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

type UmkmHandler struct {
	Service *services.UmkmService
	Storage utils.FileStorage
}

// CreatePost takes a multipart business listing. New listings always enter
// the moderation queue unapproved, whatever the client sends.
func (h *UmkmHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	data, originalName, err := readFormFile(r, "image", true)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Image is required")
		return
	}

	imageURL, err := h.Storage.Save(data, newUploadName(originalName), "umkm")
	if err != nil {
		log.Printf("CreatePost upload error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	post := models.UmkmPost{
		Content:  r.FormValue("content"),
		Kategori: r.FormValue("kategori"),
		Judul:    r.FormValue("judul"),
		Alamat:   r.FormValue("alamat"),
		Image:    imageURL,
	}

	if err := h.Service.CreatePost(r.Context(), post); err != nil {
		log.Printf("CreatePost error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	errorJSON(w, http.StatusCreated, "Posts submitted for review")
}

func (h *UmkmHandler) GetAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.GetAllPosts(r.Context())
	if err != nil {
		log.Printf("GetAllPosts error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *UmkmHandler) GetPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.Service.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			errorJSON(w, http.StatusNotFound, "Posts not found")
			return
		}
		log.Printf("GetPostByID error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// UpdatePost rewrites the text fields and, when a new image is uploaded,
// replaces the stored one too.
func (h *UmkmHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	data, originalName, err := readFormFile(r, "image", false)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid image upload")
		return
	}

	post := models.UmkmPost{
		ID:       id,
		Content:  r.FormValue("content"),
		Kategori: r.FormValue("kategori"),
		Judul:    r.FormValue("judul"),
		Alamat:   r.FormValue("alamat"),
	}

	withImage := data != nil
	if withImage {
		post.Image, err = h.Storage.Save(data, newUploadName(originalName), "umkm")
		if err != nil {
			log.Printf("UpdatePost upload error: %v", err)
			errorJSON(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	if err := h.Service.UpdatePost(r.Context(), post, withImage); err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			errorJSON(w, http.StatusNotFound, "Posts not found")
			return
		}
		log.Printf("UpdatePost error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	errorJSON(w, http.StatusOK, "Post Updated Successfully")
}

func (h *UmkmHandler) ApprovePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.Service.SetApproval(r.Context(), id, true); err != nil {
		log.Printf("ApprovePost error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	errorJSON(w, http.StatusOK, "Post approved successfully")
}

func (h *UmkmHandler) TakeDownPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.Service.SetApproval(r.Context(), id, false); err != nil {
		log.Printf("TakeDownPost error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	errorJSON(w, http.StatusOK, "Post taken down successfully")
}

func (h *UmkmHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	if err := h.Service.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			errorJSON(w, http.StatusNotFound, "Posts not found")
			return
		}
		log.Printf("DeletePost error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}

	errorJSON(w, http.StatusOK, "Posts deleted successfully")
}

// GetApprovedPosts is the public storefront list; unapproved listings
// never appear here.
func (h *UmkmHandler) GetApprovedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.GetApprovedPosts(r.Context())
	if err != nil {
		log.Printf("GetApprovedPosts error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *UmkmHandler) GetApprovedPostByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(getParam(r, "id"))
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.Service.GetApprovedPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPostNotFound) {
			errorJSON(w, http.StatusNotFound, "Posts not found")
			return
		}
		log.Printf("GetApprovedPostByID error: %v", err)
		errorJSON(w, http.StatusInternalServerError, "Server error")
		return
	}
	respondJSON(w, http.StatusOK, post)
}
