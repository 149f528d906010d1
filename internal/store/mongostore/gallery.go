package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
)

type GalleryStore struct {
	collection *mongo.Collection
}

func NewGalleryStore(db *mongo.Database) *GalleryStore {
	return &GalleryStore{collection: db.Collection("gallery")}
}

func (s *GalleryStore) Insert(ctx context.Context, img models.GalleryImage) (models.GalleryImage, error) {
	if img.ID.IsZero() {
		img.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, img); err != nil {
		return models.GalleryImage{}, translateErr(err)
	}
	return img, nil
}

func (s *GalleryStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.GalleryImage, error) {
	var img models.GalleryImage
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&img)
	return img, translateErr(err)
}

func (s *GalleryStore) List(ctx context.Context) ([]models.GalleryImage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	images := make([]models.GalleryImage, 0)
	if err := cursor.All(ctx, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *GalleryStore) Update(ctx context.Context, img models.GalleryImage) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": img.ID}, img)
	if err != nil {
		return translateErr(err)
	}
	if result.MatchedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *GalleryStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateErr(err)
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}
