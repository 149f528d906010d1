// Package handlers is the HTTP layer: request decoding and validation,
// role-scoped operations against the stores and services, and mapping of
// workflow failures onto HTTP statuses.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/services"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// decodeAndValidate parses the JSON body into dst and runs struct
// validation; on failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// currentUserID reads the acting user's identity placed on the context by
// the auth middleware.
func currentUserID(r *http.Request) (primitive.ObjectID, bool) {
	hex, ok := r.Context().Value("userID").(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func currentRole(r *http.Request) models.UserRole {
	role, _ := r.Context().Value("role").(string)
	return models.UserRole(role)
}

// writeServiceError maps workflow failures onto HTTP statuses, matching
// the taxonomy: not-found 404, forbidden 403, state/capacity/conflict
// 400, anything else 500.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		http.Error(w, notFoundMsg, http.StatusNotFound)
	case errors.Is(err, services.ErrCourseInactive):
		http.Error(w, "Course is not available for enrollment", http.StatusBadRequest)
	case errors.Is(err, services.ErrCourseFull):
		http.Error(w, "Course is full", http.StatusBadRequest)
	case errors.Is(err, services.ErrAlreadyEnrolled):
		http.Error(w, "Already enrolled in this course", http.StatusBadRequest)
	case errors.Is(err, services.ErrAlreadyPaid):
		http.Error(w, "Fee already paid", http.StatusBadRequest)
	case errors.Is(err, services.ErrForbidden):
		http.Error(w, "Not authorized", http.StatusForbidden)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
