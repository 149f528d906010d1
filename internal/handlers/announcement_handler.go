package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type AnnouncementHandler struct {
	announcements store.AnnouncementStore
}

func NewAnnouncementHandler(announcements store.AnnouncementStore) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

type announcementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// GetAnnouncements retrieves all announcements
func (h *AnnouncementHandler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch announcements", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, announcements)
}

// GetAnnouncementByID retrieves a single announcement
func (h *AnnouncementHandler) GetAnnouncementByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid announcement ID", http.StatusBadRequest)
		return
	}

	announcement, err := h.announcements.FindByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Announcement not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, announcement)
}

// CreateAnnouncement publishes a new announcement
func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req announcementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := time.Now()
	announcement, err := h.announcements.Insert(r.Context(), models.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		CreatedBy: adminID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		http.Error(w, "Failed to create announcement", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, announcement)
}

// UpdateAnnouncement updates an announcement's title and content
func (h *AnnouncementHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid announcement ID", http.StatusBadRequest)
		return
	}

	var req announcementRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	announcement, err := h.announcements.FindByID(ctx, id)
	if err != nil {
		http.Error(w, "Announcement not found", http.StatusNotFound)
		return
	}

	announcement.Title = req.Title
	announcement.Content = req.Content
	announcement.UpdatedAt = time.Now()

	if err := h.announcements.Update(ctx, announcement); err != nil {
		http.Error(w, "Failed to update announcement", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, announcement)
}

// DeleteAnnouncement removes an announcement
func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid announcement ID", http.StatusBadRequest)
		return
	}

	if err := h.announcements.Delete(r.Context(), id); err != nil {
		http.Error(w, "Announcement not found", http.StatusNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Announcement deleted successfully")
}
