package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title         string              `json:"title" bson:"title"`
	Description   string              `json:"description" bson:"description"`
	Duration      string              `json:"duration" bson:"duration"` // e.g. "6 months"
	Fee           float64             `json:"fee" bson:"fee"`
	FacultyID     *primitive.ObjectID `json:"faculty_id,omitempty" bson:"faculty_id,omitempty"`
	Capacity      int                 `json:"capacity" bson:"capacity"`
	EnrolledCount int                 `json:"enrolled_count" bson:"enrolled_count"`
	IsActive      bool                `json:"is_active" bson:"is_active"`
	CreatedAt     time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at" bson:"updated_at"`
}

// CourseSummary is the subset of course fields embedded in joined listings.
type CourseSummary struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Duration    string             `json:"duration" bson:"duration"`
	Fee         float64            `json:"fee" bson:"fee"`
}

func (c Course) Summary() CourseSummary {
	return CourseSummary{ID: c.ID, Title: c.Title, Description: c.Description, Duration: c.Duration, Fee: c.Fee}
}
