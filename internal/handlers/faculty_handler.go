package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type FacultyHandler struct {
	faculties store.FacultyStore
}

func NewFacultyHandler(faculties store.FacultyStore) *FacultyHandler {
	return &FacultyHandler{faculties: faculties}
}

type createFacultyRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Department     string `json:"department" validate:"required"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone"`
}

type updateFacultyRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Department     *string `json:"department"`
	Specialization *string `json:"specialization"`
	Phone          *string `json:"phone"`
	IsActive       *bool   `json:"is_active"`
}

// GetFaculties retrieves all faculty members
func (h *FacultyHandler) GetFaculties(w http.ResponseWriter, r *http.Request) {
	faculties, err := h.faculties.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch faculties", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, faculties)
}

// GetFacultyByID retrieves a single faculty member
func (h *FacultyHandler) GetFacultyByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid faculty ID", http.StatusBadRequest)
		return
	}

	faculty, err := h.faculties.FindByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Faculty not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, faculty)
}

// CreateFaculty adds a faculty member to the directory
func (h *FacultyHandler) CreateFaculty(w http.ResponseWriter, r *http.Request) {
	var req createFacultyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	now := time.Now()
	faculty, err := h.faculties.Insert(r.Context(), models.Faculty{
		Name:           req.Name,
		Email:          req.Email,
		Department:     req.Department,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			http.Error(w, "Email already in use", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create faculty", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, faculty)
}

// UpdateFaculty updates a faculty member's details
func (h *FacultyHandler) UpdateFaculty(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid faculty ID", http.StatusBadRequest)
		return
	}

	var req updateFacultyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	faculty, err := h.faculties.FindByID(ctx, id)
	if err != nil {
		http.Error(w, "Faculty not found", http.StatusNotFound)
		return
	}

	if req.Name != nil {
		faculty.Name = *req.Name
	}
	if req.Email != nil {
		faculty.Email = *req.Email
	}
	if req.Department != nil {
		faculty.Department = *req.Department
	}
	if req.Specialization != nil {
		faculty.Specialization = *req.Specialization
	}
	if req.Phone != nil {
		faculty.Phone = *req.Phone
	}
	if req.IsActive != nil {
		faculty.IsActive = *req.IsActive
	}
	faculty.UpdatedAt = time.Now()

	if err := h.faculties.Update(ctx, faculty); err != nil {
		http.Error(w, "Failed to update faculty", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, faculty)
}

// DeleteFaculty removes a faculty member from the directory
func (h *FacultyHandler) DeleteFaculty(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid faculty ID", http.StatusBadRequest)
		return
	}

	if err := h.faculties.Delete(r.Context(), id); err != nil {
		http.Error(w, "Faculty not found", http.StatusNotFound)
		return
	}
	respondMessage(w, http.StatusOK, "Faculty deleted successfully")
}
