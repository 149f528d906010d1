package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/services"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type StudentHandler struct {
	users       store.UserStore
	enrollments store.EnrollmentStore
	activity    *services.ActivityLogger
}

func NewStudentHandler(users store.UserStore, enrollments store.EnrollmentStore, activity *services.ActivityLogger) *StudentHandler {
	return &StudentHandler{users: users, enrollments: enrollments, activity: activity}
}

// GetStudents retrieves all student accounts
func (h *StudentHandler) GetStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.users.ListByRole(r.Context(), models.RoleStudent)
	if err != nil {
		http.Error(w, "Failed to fetch students", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, students)
}

// GetStudentByID retrieves a single student
func (h *StudentHandler) GetStudentByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	student, err := h.users.FindByID(r.Context(), id)
	if err != nil || student.Role != models.RoleStudent {
		http.Error(w, "Student not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, student)
}

// UpdateStudentStatus activates or deactivates a student account
func (h *StudentHandler) UpdateStudentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	student, err := h.users.FindByID(ctx, id)
	if err != nil || student.Role != models.RoleStudent {
		http.Error(w, "Student not found", http.StatusNotFound)
		return
	}

	student.IsActive = req.IsActive
	student.UpdatedAt = time.Now()
	if err := h.users.Update(ctx, student); err != nil {
		http.Error(w, "Failed to update student status", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Student status updated",
		"student": student,
	})
}

// GetProfile returns the authenticated student's profile
func (h *StudentHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	student, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Student not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, student)
}

// UpdateProfile updates the authenticated student's name and email
func (h *StudentHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name  string `json:"name"`
		Email string `json:"email" validate:"omitempty,email"`
	}
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	student, err := h.users.FindByID(ctx, userID)
	if err != nil {
		http.Error(w, "Student not found", http.StatusNotFound)
		return
	}
	oldName, oldEmail := student.Name, student.Email

	if req.Email != "" && req.Email != student.Email {
		if _, err := h.users.FindByEmail(ctx, req.Email); err == nil {
			http.Error(w, "Email already in use", http.StatusBadRequest)
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Failed to check email availability", http.StatusInternalServerError)
			return
		}
		student.Email = req.Email
	}
	if req.Name != "" {
		student.Name = req.Name
	}

	student.UpdatedAt = time.Now()
	if err := h.users.Update(ctx, student); err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	var changes []string
	if oldName != student.Name {
		changes = append(changes, fmt.Sprintf("name: %s -> %s", oldName, student.Name))
	}
	if oldEmail != student.Email {
		changes = append(changes, fmt.Sprintf("email: %s -> %s", oldEmail, student.Email))
	}
	if len(changes) > 0 {
		h.activity.Log(ctx, student.ID, models.ActionProfileUpdate,
			"Updated profile: "+strings.Join(changes, ", "),
			bson.M{"name": student.Name, "email": student.Email})
	}

	respondJSON(w, http.StatusOK, student)
}

// GetStudentActivity returns the student's enrollment count
func (h *StudentHandler) GetStudentActivity(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	count, err := h.enrollments.CountByStudent(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to fetch student activity", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"enrollments_count": count})
}
