package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

type ActivityStore struct {
	collection *mongo.Collection
}

func NewActivityStore(db *mongo.Database) *ActivityStore {
	return &ActivityStore{collection: db.Collection("activities")}
}

func (s *ActivityStore) Insert(ctx context.Context, a models.Activity) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	_, err := s.collection.InsertOne(ctx, a)
	return translateErr(err)
}

func (s *ActivityStore) List(ctx context.Context, filter store.ActivityFilter) ([]models.ActivityDetail, error) {
	match := bson.D{}
	if filter.UserID != nil {
		match = append(match, bson.E{Key: "user_id", Value: *filter.UserID})
	}
	if filter.Action != "" {
		match = append(match, bson.E{Key: "action", Value: filter.Action})
	}
	return s.aggregateDetails(ctx, match, filter.Limit)
}

func (s *ActivityStore) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.ActivityDetail, error) {
	return s.aggregateDetails(ctx, bson.D{{Key: "user_id", Value: userID}}, limit)
}

func (s *ActivityStore) ListSince(ctx context.Context, since time.Time, limit int64) ([]models.ActivityDetail, error) {
	match := bson.D{{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}}}
	return s.aggregateDetails(ctx, match, limit)
}

func (s *ActivityStore) aggregateDetails(ctx context.Context, match bson.D, limit int64) ([]models.ActivityDetail, error) {
	if limit <= 0 {
		limit = 50
	}

	pipeline := mongo.Pipeline{}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, sortNewestFirst())
	pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	pipeline = append(pipeline, lookupStage("users", "user_id", "user")...)

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := make([]models.ActivityDetail, 0)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *ActivityStore) Stats(ctx context.Context) (models.ActivityStats, error) {
	pipeline := mongo.Pipeline{
		{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$action"},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			}},
		},
		{
			{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}},
		},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return models.ActivityStats{}, err
	}
	defer cursor.Close(ctx)

	var byAction []models.ActionCount
	if err := cursor.All(ctx, &byAction); err != nil {
		return models.ActivityStats{}, err
	}

	total, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.ActivityStats{}, err
	}

	midnight := time.Now().Truncate(24 * time.Hour)
	today, err := s.collection.CountDocuments(ctx, bson.M{"created_at": bson.M{"$gte": midnight}})
	if err != nil {
		return models.ActivityStats{}, err
	}

	return models.ActivityStats{
		TotalActivities: total,
		TodayActivities: today,
		ByAction:        byAction,
	}, nil
}
