package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

// FeeService covers fee creation and payment. Fees have a lifecycle
// independent from enrollments: removing an enrollment never touches the
// fee generated for it.
type FeeService struct {
	fees     store.FeeStore
	courses  store.CourseStore
	users    store.UserStore
	activity *ActivityLogger
}

func NewFeeService(fees store.FeeStore, courses store.CourseStore, users store.UserStore, activity *ActivityLogger) *FeeService {
	return &FeeService{fees: fees, courses: courses, users: users, activity: activity}
}

// Create records a fee for a (student, course) pair, amount copied from
// the course's current fee. Used by admins outside the enrollment flow.
func (s *FeeService) Create(ctx context.Context, studentID, courseID primitive.ObjectID) (models.FeeDetail, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.FeeDetail{}, ErrNotFound
		}
		return models.FeeDetail{}, err
	}

	now := time.Now()
	fee, err := s.fees.Insert(ctx, models.Fee{
		StudentID: studentID,
		CourseID:  courseID,
		Amount:    course.Fee,
		Status:    models.FeePending,
		DueDate:   now.AddDate(0, 0, feeDueDays),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return models.FeeDetail{}, err
	}

	return s.detail(ctx, fee), nil
}

// Pay marks a fee as paid on behalf of the owning student. A missing
// transaction reference gets a generated receipt id so every paid fee
// carries one.
func (s *FeeService) Pay(ctx context.Context, feeID, studentID primitive.ObjectID, paymentMethod, transactionID string) (models.FeeDetail, error) {
	fee, err := s.fees.FindByID(ctx, feeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.FeeDetail{}, ErrNotFound
		}
		return models.FeeDetail{}, err
	}

	if fee.StudentID != studentID {
		return models.FeeDetail{}, ErrForbidden
	}

	if fee.Status == models.FeePaid {
		return models.FeeDetail{}, ErrAlreadyPaid
	}

	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	now := time.Now()
	fee.Status = models.FeePaid
	fee.PaymentDate = &now
	fee.PaymentMethod = paymentMethod
	fee.TransactionID = transactionID
	fee.UpdatedAt = now

	if err := s.fees.Update(ctx, fee); err != nil {
		return models.FeeDetail{}, err
	}

	s.activity.Log(ctx, studentID, models.ActionFeePayment,
		fmt.Sprintf("Paid fee of ₹%.2f for course", fee.Amount),
		bson.M{"fee_id": fee.ID, "course_id": fee.CourseID})

	return s.detail(ctx, fee), nil
}

func (s *FeeService) detail(ctx context.Context, fee models.Fee) models.FeeDetail {
	detail := models.FeeDetail{Fee: fee}
	if student, err := s.users.FindByID(ctx, fee.StudentID); err == nil {
		detail.Student = student.Summary()
	}
	if course, err := s.courses.FindByID(ctx, fee.CourseID); err == nil {
		detail.Course = course.Summary()
	}
	return detail
}
