package memstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type userStore struct{ db *DB }

func (s *userStore) Insert(ctx context.Context, u models.User) (models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.users {
		if existing.Email == u.Email {
			return models.User{}, store.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.db.users = append(s.db.users, u)
	return u, nil
}

func (s *userStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if u, ok := s.db.findUserLocked(id); ok {
		return u, nil
	}
	return models.User{}, store.ErrNotFound
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, u := range s.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *userStore) ListByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	users := make([]models.User, 0)
	for i := len(s.db.users) - 1; i >= 0; i-- {
		if s.db.users[i].Role == role {
			users = append(users, s.db.users[i])
		}
	}
	return users, nil
}

func (s *userStore) Update(ctx context.Context, u models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.users {
		if s.db.users[i].ID == u.ID {
			s.db.users[i] = u
			return nil
		}
	}
	return store.ErrNotFound
}
