package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
)

type AnnouncementStore struct {
	collection *mongo.Collection
}

func NewAnnouncementStore(db *mongo.Database) *AnnouncementStore {
	return &AnnouncementStore{collection: db.Collection("announcements")}
}

func (s *AnnouncementStore) Insert(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, a); err != nil {
		return models.Announcement{}, translateErr(err)
	}
	return a, nil
}

func (s *AnnouncementStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Announcement, error) {
	var a models.Announcement
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	return a, translateErr(err)
}

func (s *AnnouncementStore) List(ctx context.Context) ([]models.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	announcements := make([]models.Announcement, 0)
	if err := cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *AnnouncementStore) Update(ctx context.Context, a models.Announcement) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return translateErr(err)
	}
	if result.MatchedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *AnnouncementStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateErr(err)
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}
