// Package memstore is an in-memory implementation of the store
// interfaces, used as a test double. It mirrors mongostore behavior,
// including the unique (student_id, course_id) enrollment index and
// newest-first listings.
package memstore

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type DB struct {
	mu            sync.RWMutex
	users         []models.User
	courses       []models.Course
	enrollments   []models.Enrollment
	fees          []models.Fee
	announcements []models.Announcement
	faculties     []models.Faculty
	gallery       []models.GalleryImage
	suggestions   []models.Suggestion
	activities    []models.Activity
}

func Open() *DB {
	return &DB{}
}

func (db *DB) Users() store.UserStore                 { return &userStore{db} }
func (db *DB) Courses() store.CourseStore             { return &courseStore{db} }
func (db *DB) Enrollments() store.EnrollmentStore     { return &enrollmentStore{db} }
func (db *DB) Fees() store.FeeStore                   { return &feeStore{db} }
func (db *DB) Announcements() store.AnnouncementStore { return &announcementStore{db} }
func (db *DB) Faculties() store.FacultyStore          { return &facultyStore{db} }
func (db *DB) Gallery() store.GalleryStore            { return &galleryStore{db} }
func (db *DB) Suggestions() store.SuggestionStore     { return &suggestionStore{db} }
func (db *DB) Activities() store.ActivityStore        { return &activityStore{db} }

// lookup helpers; callers must hold db.mu.

func (db *DB) findUserLocked(id primitive.ObjectID) (models.User, bool) {
	for _, u := range db.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (db *DB) findCourseLocked(id primitive.ObjectID) (models.Course, bool) {
	for _, c := range db.courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}
