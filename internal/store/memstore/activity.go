package memstore

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type activityStore struct{ db *DB }

func (s *activityStore) Insert(ctx context.Context, a models.Activity) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	s.db.activities = append(s.db.activities, a)
	return nil
}

func (s *activityStore) List(ctx context.Context, filter store.ActivityFilter) ([]models.ActivityDetail, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	details := make([]models.ActivityDetail, 0)
	for i := len(s.db.activities) - 1; i >= 0 && int64(len(details)) < limit; i-- {
		a := s.db.activities[i]
		if filter.UserID != nil && a.UserID != *filter.UserID {
			continue
		}
		if filter.Action != "" && a.Action != filter.Action {
			continue
		}
		details = append(details, s.detailLocked(a))
	}
	return details, nil
}

func (s *activityStore) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.ActivityDetail, error) {
	return s.List(ctx, store.ActivityFilter{UserID: &userID, Limit: limit})
}

func (s *activityStore) ListSince(ctx context.Context, since time.Time, limit int64) ([]models.ActivityDetail, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	details := make([]models.ActivityDetail, 0)
	for i := len(s.db.activities) - 1; i >= 0 && int64(len(details)) < limit; i-- {
		a := s.db.activities[i]
		if a.CreatedAt.Before(since) {
			continue
		}
		details = append(details, s.detailLocked(a))
	}
	return details, nil
}

func (s *activityStore) Stats(ctx context.Context) (models.ActivityStats, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	counts := make(map[models.ActivityAction]int64)
	midnight := time.Now().Truncate(24 * time.Hour)

	stats := models.ActivityStats{TotalActivities: int64(len(s.db.activities))}
	for _, a := range s.db.activities {
		counts[a.Action]++
		if !a.CreatedAt.Before(midnight) {
			stats.TodayActivities++
		}
	}

	stats.ByAction = make([]models.ActionCount, 0, len(counts))
	for action, count := range counts {
		stats.ByAction = append(stats.ByAction, models.ActionCount{Action: action, Count: count})
	}
	sort.Slice(stats.ByAction, func(i, j int) bool {
		return stats.ByAction[i].Count > stats.ByAction[j].Count
	})
	return stats, nil
}

func (s *activityStore) detailLocked(a models.Activity) models.ActivityDetail {
	detail := models.ActivityDetail{Activity: a}
	if user, ok := s.db.findUserLocked(a.UserID); ok {
		detail.User = user.Summary()
	}
	return detail
}
