package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type ActivityHandler struct {
	activities store.ActivityStore
}

func NewActivityHandler(activities store.ActivityStore) *ActivityHandler {
	return &ActivityHandler{activities: activities}
}

// GetActivities retrieves the audit log, optionally filtered by user and
// action
func (h *ActivityHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	filter := store.ActivityFilter{
		Action: models.ActivityAction(r.URL.Query().Get("action")),
		Limit:  queryInt64(r, "limit", 50),
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		id, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}
		filter.UserID = &id
	}

	activities, err := h.activities.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to fetch activities", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, activities)
}

// GetRecentActivities retrieves activities from the last N hours
// (default 24)
func (h *ActivityHandler) GetRecentActivities(w http.ResponseWriter, r *http.Request) {
	hours := queryInt64(r, "hours", 24)
	since := time.Now().Add(-time.Duration(hours) * time.Hour)

	activities, err := h.activities.ListSince(r.Context(), since, 50)
	if err != nil {
		http.Error(w, "Failed to fetch recent activities", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, activities)
}

// GetActivityStats retrieves audit-log volume statistics
func (h *ActivityHandler) GetActivityStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.activities.Stats(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch activity statistics", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// GetStudentActivities retrieves a single student's audit trail
func (h *ActivityHandler) GetStudentActivities(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	activities, err := h.activities.ListByUser(r.Context(), id, 100)
	if err != nil {
		http.Error(w, "Failed to fetch student activities", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, activities)
}

func queryInt64(r *http.Request, key string, fallback int64) int64 {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
