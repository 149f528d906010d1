package memstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type announcementStore struct{ db *DB }

func (s *announcementStore) Insert(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	s.db.announcements = append(s.db.announcements, a)
	return a, nil
}

func (s *announcementStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Announcement, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, a := range s.db.announcements {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Announcement{}, store.ErrNotFound
}

func (s *announcementStore) List(ctx context.Context) ([]models.Announcement, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.Announcement, 0, len(s.db.announcements))
	for i := len(s.db.announcements) - 1; i >= 0; i-- {
		out = append(out, s.db.announcements[i])
	}
	return out, nil
}

func (s *announcementStore) Update(ctx context.Context, a models.Announcement) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.announcements {
		if s.db.announcements[i].ID == a.ID {
			s.db.announcements[i] = a
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *announcementStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.announcements {
		if s.db.announcements[i].ID == id {
			s.db.announcements = append(s.db.announcements[:i], s.db.announcements[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type facultyStore struct{ db *DB }

func (s *facultyStore) Insert(ctx context.Context, f models.Faculty) (models.Faculty, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.faculties {
		if existing.Email == f.Email {
			return models.Faculty{}, store.ErrDuplicate
		}
	}
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	s.db.faculties = append(s.db.faculties, f)
	return f, nil
}

func (s *facultyStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Faculty, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, f := range s.db.faculties {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Faculty{}, store.ErrNotFound
}

func (s *facultyStore) FindByEmail(ctx context.Context, email string) (models.Faculty, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, f := range s.db.faculties {
		if f.Email == email {
			return f, nil
		}
	}
	return models.Faculty{}, store.ErrNotFound
}

func (s *facultyStore) List(ctx context.Context) ([]models.Faculty, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.Faculty, 0, len(s.db.faculties))
	for i := len(s.db.faculties) - 1; i >= 0; i-- {
		out = append(out, s.db.faculties[i])
	}
	return out, nil
}

func (s *facultyStore) Update(ctx context.Context, f models.Faculty) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.faculties {
		if s.db.faculties[i].ID == f.ID {
			s.db.faculties[i] = f
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *facultyStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.faculties {
		if s.db.faculties[i].ID == id {
			s.db.faculties = append(s.db.faculties[:i], s.db.faculties[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type galleryStore struct{ db *DB }

func (s *galleryStore) Insert(ctx context.Context, img models.GalleryImage) (models.GalleryImage, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if img.ID.IsZero() {
		img.ID = primitive.NewObjectID()
	}
	s.db.gallery = append(s.db.gallery, img)
	return img, nil
}

func (s *galleryStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.GalleryImage, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, img := range s.db.gallery {
		if img.ID == id {
			return img, nil
		}
	}
	return models.GalleryImage{}, store.ErrNotFound
}

func (s *galleryStore) List(ctx context.Context) ([]models.GalleryImage, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.GalleryImage, 0, len(s.db.gallery))
	for i := len(s.db.gallery) - 1; i >= 0; i-- {
		out = append(out, s.db.gallery[i])
	}
	return out, nil
}

func (s *galleryStore) Update(ctx context.Context, img models.GalleryImage) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.gallery {
		if s.db.gallery[i].ID == img.ID {
			s.db.gallery[i] = img
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *galleryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.gallery {
		if s.db.gallery[i].ID == id {
			s.db.gallery = append(s.db.gallery[:i], s.db.gallery[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type suggestionStore struct{ db *DB }

func (s *suggestionStore) Insert(ctx context.Context, sg models.Suggestion) (models.Suggestion, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if sg.ID.IsZero() {
		sg.ID = primitive.NewObjectID()
	}
	s.db.suggestions = append(s.db.suggestions, sg)
	return sg, nil
}

func (s *suggestionStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Suggestion, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	for _, sg := range s.db.suggestions {
		if sg.ID == id {
			return sg, nil
		}
	}
	return models.Suggestion{}, store.ErrNotFound
}

func (s *suggestionStore) List(ctx context.Context) ([]models.Suggestion, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.Suggestion, 0, len(s.db.suggestions))
	for i := len(s.db.suggestions) - 1; i >= 0; i-- {
		out = append(out, s.db.suggestions[i])
	}
	return out, nil
}

func (s *suggestionStore) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Suggestion, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	out := make([]models.Suggestion, 0)
	for i := len(s.db.suggestions) - 1; i >= 0; i-- {
		if s.db.suggestions[i].StudentID == studentID {
			out = append(out, s.db.suggestions[i])
		}
	}
	return out, nil
}

func (s *suggestionStore) Update(ctx context.Context, sg models.Suggestion) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.suggestions {
		if s.db.suggestions[i].ID == sg.ID {
			s.db.suggestions[i] = sg
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *suggestionStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.suggestions {
		if s.db.suggestions[i].ID == id {
			s.db.suggestions = append(s.db.suggestions[:i], s.db.suggestions[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
