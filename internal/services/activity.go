package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

// ActivityLogger appends audit-log entries. Writes are fire-and-forget:
// failures are logged and swallowed, no workflow depends on the trail.
type ActivityLogger struct {
	activities store.ActivityStore
}

func NewActivityLogger(activities store.ActivityStore) *ActivityLogger {
	return &ActivityLogger{activities: activities}
}

func (l *ActivityLogger) Log(ctx context.Context, userID primitive.ObjectID, action models.ActivityAction, description string, metadata bson.M) {
	entry := models.Activity{
		UserID:      userID,
		Action:      action,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}
	if err := l.activities.Insert(ctx, entry); err != nil {
		log.Printf("Failed to record %s activity: %v", action, err)
	}
}
