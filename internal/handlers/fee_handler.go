package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/services"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type FeeHandler struct {
	svc  *services.FeeService
	fees store.FeeStore
}

func NewFeeHandler(svc *services.FeeService, fees store.FeeStore) *FeeHandler {
	return &FeeHandler{svc: svc, fees: fees}
}

type createFeeRequest struct {
	StudentID string `json:"student_id" validate:"required,len=24"`
	CourseID  string `json:"course_id" validate:"required,len=24"`
}

type payFeeRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card online bank_transfer"`
	TransactionID string `json:"transaction_id"`
}

// GetFees retrieves all fees with student and course details
func (h *FeeHandler) GetFees(w http.ResponseWriter, r *http.Request) {
	details, err := h.fees.ListDetails(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch fees", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// GetMyFees retrieves the authenticated student's fees
func (h *FeeHandler) GetMyFees(w http.ResponseWriter, r *http.Request) {
	studentID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	details, err := h.fees.ListByStudent(r.Context(), studentID)
	if err != nil {
		http.Error(w, "Failed to fetch fees", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, details)
}

// GetFeeStats retrieves billing totals for the admin dashboard
func (h *FeeHandler) GetFeeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.fees.Stats(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch fee statistics", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

// CreateFee records a fee for a student outside the enrollment flow
func (h *FeeHandler) CreateFee(w http.ResponseWriter, r *http.Request) {
	var req createFeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	studentID, err := primitive.ObjectIDFromHex(req.StudentID)
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}
	courseID, err := primitive.ObjectIDFromHex(req.CourseID)
	if err != nil {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return
	}

	detail, err := h.svc.Create(r.Context(), studentID, courseID)
	if err != nil {
		writeServiceError(w, err, "Course not found")
		return
	}
	respondJSON(w, http.StatusCreated, detail)
}

// PayFee marks a fee as paid by the authenticated student
func (h *FeeHandler) PayFee(w http.ResponseWriter, r *http.Request) {
	studentID, ok := currentUserID(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	feeID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid fee ID", http.StatusBadRequest)
		return
	}

	var req payFeeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	detail, err := h.svc.Pay(r.Context(), feeID, studentID, req.PaymentMethod, req.TransactionID)
	if err != nil {
		writeServiceError(w, err, "Fee not found")
		return
	}
	respondJSON(w, http.StatusOK, detail)
}
