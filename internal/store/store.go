// Package store defines the persistence interfaces consumed by the
// handlers and services. Two implementations exist: mongostore (MongoDB)
// and memstore (in-memory, used by tests).
package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
)

var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

type UserStore interface {
	Insert(ctx context.Context, u models.User) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
}

type CourseStore interface {
	Insert(ctx context.Context, c models.Course) (models.Course, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	Update(ctx context.Context, c models.Course) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type EnrollmentStore interface {
	// Insert returns ErrDuplicate when the (student_id, course_id) unique
	// index rejects the document.
	Insert(ctx context.Context, e models.Enrollment) (models.Enrollment, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Enrollment, error)
	FindByStudentAndCourse(ctx context.Context, studentID, courseID primitive.ObjectID) (models.Enrollment, error)
	ListDetails(ctx context.Context) ([]models.EnrollmentDetail, error)
	ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.EnrollmentDetail, error)
	CountByStudent(ctx context.Context, studentID primitive.ObjectID) (int64, error)
	CountByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error)
}

type FeeStore interface {
	Insert(ctx context.Context, f models.Fee) (models.Fee, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Fee, error)
	ListDetails(ctx context.Context) ([]models.FeeDetail, error)
	ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.FeeDetail, error)
	Update(ctx context.Context, f models.Fee) error
	Stats(ctx context.Context) (models.FeeStats, error)
}

type AnnouncementStore interface {
	Insert(ctx context.Context, a models.Announcement) (models.Announcement, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Announcement, error)
	List(ctx context.Context) ([]models.Announcement, error)
	Update(ctx context.Context, a models.Announcement) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type FacultyStore interface {
	Insert(ctx context.Context, f models.Faculty) (models.Faculty, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Faculty, error)
	FindByEmail(ctx context.Context, email string) (models.Faculty, error)
	List(ctx context.Context) ([]models.Faculty, error)
	Update(ctx context.Context, f models.Faculty) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type GalleryStore interface {
	Insert(ctx context.Context, img models.GalleryImage) (models.GalleryImage, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.GalleryImage, error)
	List(ctx context.Context) ([]models.GalleryImage, error)
	Update(ctx context.Context, img models.GalleryImage) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SuggestionStore interface {
	Insert(ctx context.Context, s models.Suggestion) (models.Suggestion, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Suggestion, error)
	List(ctx context.Context) ([]models.Suggestion, error)
	ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Suggestion, error)
	Update(ctx context.Context, s models.Suggestion) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ActivityFilter narrows admin audit-log listings.
type ActivityFilter struct {
	UserID *primitive.ObjectID
	Action models.ActivityAction
	Limit  int64
}

type ActivityStore interface {
	Insert(ctx context.Context, a models.Activity) error
	List(ctx context.Context, filter ActivityFilter) ([]models.ActivityDetail, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.ActivityDetail, error)
	ListSince(ctx context.Context, since time.Time, limit int64) ([]models.ActivityDetail, error)
	Stats(ctx context.Context) (models.ActivityStats, error)
}
