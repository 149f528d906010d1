package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type GalleryHandler struct {
	gallery store.GalleryStore
}

func NewGalleryHandler(gallery store.GalleryStore) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

type createGalleryRequest struct {
	ImageURL    string `json:"image_url" validate:"required,url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateGalleryRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// GetGalleryImages retrieves all gallery images
func (h *GalleryHandler) GetGalleryImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.gallery.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch gallery images", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, images)
}

// CreateGalleryImage adds an image to the gallery by URL
func (h *GalleryHandler) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createGalleryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	image, err := h.gallery.Insert(r.Context(), models.GalleryImage{
		ImageURL:    req.ImageURL,
		Title:       req.Title,
		Description: req.Description,
		UploadedBy:  adminID,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		http.Error(w, "Failed to create gallery image", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, image)
}

// UpdateGalleryImage updates an image's title and description
func (h *GalleryHandler) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid image ID", http.StatusBadRequest)
		return
	}

	var req updateGalleryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	image, err := h.gallery.FindByID(ctx, id)
	if err != nil {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}

	if req.Title != nil {
		image.Title = *req.Title
	}
	if req.Description != nil {
		image.Description = *req.Description
	}

	if err := h.gallery.Update(ctx, image); err != nil {
		http.Error(w, "Failed to update gallery image", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, image)
}

// DeleteGalleryImage removes an image from the gallery
func (h *GalleryHandler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid image ID", http.StatusBadRequest)
		return
	}

	if err := h.gallery.Delete(r.Context(), id); err != nil {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Image deleted successfully")
}
