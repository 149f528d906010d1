package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeeStatus string

const (
	FeePending FeeStatus = "pending"
	FeePaid    FeeStatus = "paid"
	FeeOverdue FeeStatus = "overdue"
)

// Fee is a billing obligation created when a student enrolls in a course.
// Amount is copied from the course at enrollment time; later course fee
// changes do not affect existing records. A fee outlives its enrollment.
type Fee struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID     primitive.ObjectID `json:"student_id" bson:"student_id"`
	CourseID      primitive.ObjectID `json:"course_id" bson:"course_id"`
	Amount        float64            `json:"amount" bson:"amount"`
	Status        FeeStatus          `json:"status" bson:"status"`
	DueDate       time.Time          `json:"due_date" bson:"due_date"`
	PaymentDate   *time.Time         `json:"payment_date,omitempty" bson:"payment_date,omitempty"`
	PaymentMethod string             `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	TransactionID string             `json:"transaction_id,omitempty" bson:"transaction_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// FeeDetail is a fee joined with student and course fields for display.
type FeeDetail struct {
	Fee     `bson:",inline"`
	Student UserSummary   `json:"student" bson:"student"`
	Course  CourseSummary `json:"course" bson:"course"`
}

// FeeStats are the aggregate totals shown on the admin dashboard.
type FeeStats struct {
	TotalAmount   float64 `json:"total_amount" bson:"total_amount"`
	PaidAmount    float64 `json:"paid_amount" bson:"paid_amount"`
	PendingAmount float64 `json:"pending_amount" bson:"pending_amount"`
}
