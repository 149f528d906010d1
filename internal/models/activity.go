package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityAction string

const (
	ActionLogin            ActivityAction = "login"
	ActionProfileUpdate    ActivityAction = "profile_update"
	ActionCourseEnroll     ActivityAction = "course_enroll"
	ActionCourseUnenroll   ActivityAction = "course_unenroll"
	ActionFeePayment       ActivityAction = "fee_payment"
	ActionSuggestionSubmit ActivityAction = "suggestion_submit"
)

// Activity is an append-only audit record of a user action. It is written
// fire-and-forget and consumed for display only.
type Activity struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Action      ActivityAction     `json:"action" bson:"action"`
	Description string             `json:"description" bson:"description"`
	Metadata    bson.M             `json:"metadata,omitempty" bson:"metadata,omitempty"`
	IPAddress   string             `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
}

// ActivityDetail is an activity joined with the acting user for display.
type ActivityDetail struct {
	Activity `bson:",inline"`
	User     UserSummary `json:"user" bson:"user"`
}

// ActivityStats summarize audit-log volume for the admin dashboard.
type ActivityStats struct {
	TotalActivities int64         `json:"total_activities"`
	TodayActivities int64         `json:"today_activities"`
	ByAction        []ActionCount `json:"by_action"`
}

type ActionCount struct {
	Action ActivityAction `json:"action" bson:"_id"`
	Count  int64          `json:"count" bson:"count"`
}
