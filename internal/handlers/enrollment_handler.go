package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/services"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type EnrollmentHandler struct {
	svc         *services.EnrollmentService
	enrollments store.EnrollmentStore
}

func NewEnrollmentHandler(svc *services.EnrollmentService, enrollments store.EnrollmentStore) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc, enrollments: enrollments}
}

type createEnrollmentRequest struct {
	CourseID string `json:"course_id" validate:"required,len=24"`
}

// GetEnrollments retrieves all enrollments with student and course details
func (h *EnrollmentHandler) GetEnrollments(w http.ResponseWriter, r *http.Request) {
	details, err := h.enrollments.ListDetails(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch enrollments", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// GetMyEnrollments retrieves the authenticated student's enrollments
func (h *EnrollmentHandler) GetMyEnrollments(w http.ResponseWriter, r *http.Request) {
	studentID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	details, err := h.enrollments.ListByStudent(r.Context(), studentID)
	if err != nil {
		http.Error(w, "Failed to fetch enrollments", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// CreateEnrollment registers the authenticated student in a course
func (h *EnrollmentHandler) CreateEnrollment(w http.ResponseWriter, r *http.Request) {
	studentID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createEnrollmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	courseID, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	detail, err := h.svc.Enroll(r.Context(), studentID, courseID)
	if err != nil {
		writeServiceError(w, err, "Course not found")
		return
	}
	respondJSON(w, http.StatusCreated, detail)
}

// DeleteEnrollment removes an enrollment; allowed for the owning student
// or an admin
func (h *EnrollmentHandler) DeleteEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	enrollmentID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid enrollment ID", http.StatusBadRequest)
		return
	}

	if err := h.svc.Unenroll(r.Context(), enrollmentID, userID, currentRole(r)); err != nil {
		writeServiceError(w, err, "Enrollment not found")
		return
	}
	respondMessage(w, http.StatusOK, "Enrollment deleted successfully")
}
