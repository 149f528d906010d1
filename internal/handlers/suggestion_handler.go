package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/services"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type SuggestionHandler struct {
	suggestions store.SuggestionStore
	activity    *services.ActivityLogger
}

func NewSuggestionHandler(suggestions store.SuggestionStore, activity *services.ActivityLogger) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions, activity: activity}
}

type createSuggestionRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"omitempty,oneof=academic facilities services other"`
}

type updateSuggestionRequest struct {
	Status        string `json:"status" validate:"required,oneof=pending reviewed implemented rejected"`
	AdminResponse string `json:"admin_response"`
}

// GetSuggestions retrieves all suggestions
func (h *SuggestionHandler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.suggestions.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch suggestions", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, suggestions)
}

// GetMySuggestions retrieves the authenticated student's suggestions
func (h *SuggestionHandler) GetMySuggestions(w http.ResponseWriter, r *http.Request) {
	studentID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	suggestions, err := h.suggestions.ListByStudent(r.Context(), studentID)
	if err != nil {
		http.Error(w, "Failed to fetch suggestions", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, suggestions)
}

// CreateSuggestion submits a suggestion from the authenticated student
func (h *SuggestionHandler) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	studentID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createSuggestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	category := models.SuggestionCategory(req.Category)
	if category == "" {
		category = models.CategoryOther
	}

	ctx := r.Context()
	now := time.Now()
	suggestion, err := h.suggestions.Insert(ctx, models.Suggestion{
		StudentID: studentID,
		Title:     req.Title,
		Content:   req.Content,
		Category:  category,
		Status:    models.SuggestionPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		http.Error(w, "Failed to create suggestion", http.StatusInternalServerError)
		return
	}

	h.activity.Log(ctx, studentID, models.ActionSuggestionSubmit,
		"Submitted suggestion: "+suggestion.Title,
		bson.M{"suggestion_id": suggestion.ID})

	respondJSON(w, http.StatusCreated, suggestion)
}

// UpdateSuggestionStatus sets a suggestion's review status and response
func (h *SuggestionHandler) UpdateSuggestionStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid suggestion ID", http.StatusBadRequest)
		return
	}

	var req updateSuggestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	suggestion, err := h.suggestions.FindByID(ctx, id)
	if err != nil {
		http.Error(w, "Suggestion not found", http.StatusNotFound)
		return
	}

	suggestion.Status = models.SuggestionStatus(req.Status)
	if req.AdminResponse != "" {
		suggestion.AdminResponse = req.AdminResponse
	}
	suggestion.UpdatedAt = time.Now()

	if err := h.suggestions.Update(ctx, suggestion); err != nil {
		http.Error(w, "Failed to update suggestion", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, suggestion)
}

// DeleteSuggestion removes a suggestion; allowed for the submitting
// student or an admin
func (h *SuggestionHandler) DeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid suggestion ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	suggestion, err := h.suggestions.FindByID(ctx, id)
	if err != nil {
		http.Error(w, "Suggestion not found", http.StatusNotFound)
		return
	}

	if currentRole(r) != models.RoleAdmin && suggestion.StudentID != userID {
		http.Error(w, "Not authorized", http.StatusForbidden)
		return
	}

	if err := h.suggestions.Delete(ctx, suggestion.ID); err != nil {
		http.Error(w, "Failed to delete suggestion", http.StatusInternalServerError)
		return
	}
	respondMessage(w, http.StatusOK, "Suggestion deleted successfully")
}
