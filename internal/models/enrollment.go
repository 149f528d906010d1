package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment links one student to one course. The (student_id, course_id)
// pair is unique, enforced by a compound index on the collection.
type Enrollment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID primitive.ObjectID `json:"student_id" bson:"student_id"`
	CourseID  primitive.ObjectID `json:"course_id" bson:"course_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// EnrollmentDetail is an enrollment joined with student and course fields
// for display.
type EnrollmentDetail struct {
	Enrollment `bson:",inline"`
	Student    UserSummary   `json:"student" bson:"student"`
	Course     CourseSummary `json:"course" bson:"course"`
}
