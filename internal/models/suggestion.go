package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SuggestionCategory string

const (
	CategoryAcademic   SuggestionCategory = "academic"
	CategoryFacilities SuggestionCategory = "facilities"
	CategoryServices   SuggestionCategory = "services"
	CategoryOther      SuggestionCategory = "other"
)

type SuggestionStatus string

const (
	SuggestionPending     SuggestionStatus = "pending"
	SuggestionReviewed    SuggestionStatus = "reviewed"
	SuggestionImplemented SuggestionStatus = "implemented"
	SuggestionRejected    SuggestionStatus = "rejected"
)

type Suggestion struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	StudentID     primitive.ObjectID `json:"student_id" bson:"student_id"`
	Title         string             `json:"title" bson:"title"`
	Content       string             `json:"content" bson:"content"`
	Category      SuggestionCategory `json:"category" bson:"category"`
	Status        SuggestionStatus   `json:"status" bson:"status"`
	AdminResponse string             `json:"admin_response,omitempty" bson:"admin_response,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
