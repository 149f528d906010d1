package memstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type courseStore struct{ db *DB }

func (s *courseStore) Insert(ctx context.Context, c models.Course) (models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	s.db.courses = append(s.db.courses, c)
	return c, nil
}

func (s *courseStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if c, ok := s.db.findCourseLocked(id); ok {
		return c, nil
	}
	return models.Course{}, store.ErrNotFound
}

func (s *courseStore) List(ctx context.Context) ([]models.Course, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	courses := make([]models.Course, 0, len(s.db.courses))
	for i := len(s.db.courses) - 1; i >= 0; i-- {
		courses = append(courses, s.db.courses[i])
	}
	return courses, nil
}

func (s *courseStore) Update(ctx context.Context, c models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.courses {
		if s.db.courses[i].ID == c.ID {
			s.db.courses[i] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *courseStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.courses {
		if s.db.courses[i].ID == id {
			s.db.courses = append(s.db.courses[:i], s.db.courses[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
