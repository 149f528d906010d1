package memstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type feeStore struct{ db *DB }

func (s *feeStore) Insert(ctx context.Context, f models.Fee) (models.Fee, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	s.db.fees = append(s.db.fees, f)
	return f, nil
}

func (s *feeStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Fee, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, f := range s.db.fees {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Fee{}, store.ErrNotFound
}

func (s *feeStore) ListDetails(ctx context.Context) ([]models.FeeDetail, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	details := make([]models.FeeDetail, 0, len(s.db.fees))
	for i := len(s.db.fees) - 1; i >= 0; i-- {
		details = append(details, s.detailLocked(s.db.fees[i]))
	}
	return details, nil
}

func (s *feeStore) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.FeeDetail, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	details := make([]models.FeeDetail, 0)
	for i := len(s.db.fees) - 1; i >= 0; i-- {
		if s.db.fees[i].StudentID == studentID {
			details = append(details, s.detailLocked(s.db.fees[i]))
		}
	}
	return details, nil
}

func (s *feeStore) detailLocked(f models.Fee) models.FeeDetail {
	detail := models.FeeDetail{Fee: f}
	if student, ok := s.db.findUserLocked(f.StudentID); ok {
		detail.Student = student.Summary()
	}
	if course, ok := s.db.findCourseLocked(f.CourseID); ok {
		detail.Course = course.Summary()
	}
	return detail
}

func (s *feeStore) Update(ctx context.Context, f models.Fee) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.fees {
		if s.db.fees[i].ID == f.ID {
			s.db.fees[i] = f
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *feeStore) Stats(ctx context.Context) (models.FeeStats, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	var stats models.FeeStats
	for _, f := range s.db.fees {
		stats.TotalAmount += f.Amount
		switch f.Status {
		case models.FeePaid:
			stats.PaidAmount += f.Amount
		case models.FeePending:
			stats.PendingAmount += f.Amount
		}
	}
	return stats, nil
}
