package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

// defaultCapacity is applied when a course is created without one.
const defaultCapacity = 50

type CourseHandler struct {
	courses     store.CourseStore
	enrollments store.EnrollmentStore
}

func NewCourseHandler(courses store.CourseStore, enrollments store.EnrollmentStore) *CourseHandler {
	return &CourseHandler{courses: courses, enrollments: enrollments}
}

type createCourseRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Duration    string  `json:"duration" validate:"required"`
	Fee         float64 `json:"fee" validate:"gte=0"`
	Capacity    int     `json:"capacity" validate:"omitempty,gte=1"`
	FacultyID   string  `json:"faculty_id" validate:"omitempty,len=24"`
}

type updateCourseRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Duration    *string  `json:"duration"`
	Fee         *float64 `json:"fee" validate:"omitempty,gte=0"`
	Capacity    *int     `json:"capacity" validate:"omitempty,gte=1"`
	IsActive    *bool    `json:"is_active"`
}

// GetCourses retrieves all courses
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courses.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch courses", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, courses)
}

// GetCourseByID retrieves a single course
func (h *CourseHandler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	course, err := h.courses.FindByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, course)
}

// CreateCourse handles creating a new course
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req createCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = defaultCapacity
	}

	now := time.Now()
	course := models.Course{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Fee:         req.Fee,
		Capacity:    capacity,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.FacultyID != "" {
		facultyID, err := primitive.ObjectIDFromHex(req.FacultyID)
		if err != nil {
			http.Error(w, "Invalid faculty ID", http.StatusBadRequest)
			return
		}
		course.FacultyID = &facultyID
	}

	course, err := h.courses.Insert(r.Context(), course)
	if err != nil {
		http.Error(w, "Failed to create course", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, course)
}

// UpdateCourse updates course details
func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	var req updateCourseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx := r.Context()
	course, err := h.courses.FindByID(ctx, id)
	if err != nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Fee != nil {
		course.Fee = *req.Fee
	}
	if req.Capacity != nil {
		course.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}
	course.UpdatedAt = time.Now()

	if err := h.courses.Update(ctx, course); err != nil {
		http.Error(w, "Failed to update course", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, course)
}

// DeleteCourse deletes a course and its enrollments. Fee records are
// kept as billing history.
func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, err := h.courses.FindByID(ctx, id); err != nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	if _, err := h.enrollments.DeleteByCourse(ctx, id); err != nil {
		http.Error(w, "Failed to delete course enrollments", http.StatusInternalServerError)
		return
	}

	if err := h.courses.Delete(ctx, id); err != nil {
		http.Error(w, "Failed to delete course", http.StatusInternalServerError)
		return
	}
	respondMessage(w, http.StatusOK, "Course deleted successfully")
}
