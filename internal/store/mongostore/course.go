package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
)

type CourseStore struct {
	collection *mongo.Collection
}

func NewCourseStore(db *mongo.Database) *CourseStore {
	return &CourseStore{collection: db.Collection("courses")}
}

func (s *CourseStore) Insert(ctx context.Context, c models.Course) (models.Course, error) {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, c); err != nil {
		return models.Course{}, translateErr(err)
	}
	return c, nil
}

func (s *CourseStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var c models.Course
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, translateErr(err)
}

func (s *CourseStore) List(ctx context.Context) ([]models.Course, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := make([]models.Course, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseStore) Update(ctx context.Context, c models.Course) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return translateErr(err)
	}
	if result.MatchedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *CourseStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateErr(err)
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}
