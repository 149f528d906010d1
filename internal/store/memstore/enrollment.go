package memstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type enrollmentStore struct{ db *DB }

// Insert rejects a second enrollment for the same (student, course) pair
// with ErrDuplicate, matching the unique compound index in MongoDB.
func (s *enrollmentStore) Insert(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.enrollments {
		if existing.StudentID == e.StudentID && existing.CourseID == e.CourseID {
			return models.Enrollment{}, store.ErrDuplicate
		}
	}
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	s.db.enrollments = append(s.db.enrollments, e)
	return e, nil
}

func (s *enrollmentStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Enrollment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, e := range s.db.enrollments {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Enrollment{}, store.ErrNotFound
}

func (s *enrollmentStore) FindByStudentAndCourse(ctx context.Context, studentID, courseID primitive.ObjectID) (models.Enrollment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, e := range s.db.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return e, nil
		}
	}
	return models.Enrollment{}, store.ErrNotFound
}

func (s *enrollmentStore) ListDetails(ctx context.Context) ([]models.EnrollmentDetail, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	details := make([]models.EnrollmentDetail, 0, len(s.db.enrollments))
	for i := len(s.db.enrollments) - 1; i >= 0; i-- {
		details = append(details, s.detailLocked(s.db.enrollments[i]))
	}
	return details, nil
}

func (s *enrollmentStore) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.EnrollmentDetail, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	details := make([]models.EnrollmentDetail, 0)
	for i := len(s.db.enrollments) - 1; i >= 0; i-- {
		if s.db.enrollments[i].StudentID == studentID {
			details = append(details, s.detailLocked(s.db.enrollments[i]))
		}
	}
	return details, nil
}

func (s *enrollmentStore) detailLocked(e models.Enrollment) models.EnrollmentDetail {
	detail := models.EnrollmentDetail{Enrollment: e}
	if student, ok := s.db.findUserLocked(e.StudentID); ok {
		detail.Student = student.Summary()
	}
	if course, ok := s.db.findCourseLocked(e.CourseID); ok {
		detail.Course = course.Summary()
	}
	return detail
}

func (s *enrollmentStore) CountByStudent(ctx context.Context, studentID primitive.ObjectID) (int64, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	var n int64
	for _, e := range s.db.enrollments {
		if e.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

func (s *enrollmentStore) CountByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	var n int64
	for _, e := range s.db.enrollments {
		if e.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (s *enrollmentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.enrollments {
		if s.db.enrollments[i].ID == id {
			s.db.enrollments = append(s.db.enrollments[:i], s.db.enrollments[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *enrollmentStore) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var kept []models.Enrollment
	var removed int64
	for _, e := range s.db.enrollments {
		if e.CourseID == courseID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.db.enrollments = kept
	return removed, nil
}
