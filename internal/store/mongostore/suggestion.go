package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
)

type SuggestionStore struct {
	collection *mongo.Collection
}

func NewSuggestionStore(db *mongo.Database) *SuggestionStore {
	return &SuggestionStore{collection: db.Collection("suggestions")}
}

func (s *SuggestionStore) Insert(ctx context.Context, sg models.Suggestion) (models.Suggestion, error) {
	if sg.ID.IsZero() {
		sg.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, sg); err != nil {
		return models.Suggestion{}, translateErr(err)
	}
	return sg, nil
}

func (s *SuggestionStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Suggestion, error) {
	var sg models.Suggestion
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sg)
	return sg, translateErr(err)
}

func (s *SuggestionStore) List(ctx context.Context) ([]models.Suggestion, error) {
	return s.list(ctx, bson.M{})
}

func (s *SuggestionStore) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.Suggestion, error) {
	return s.list(ctx, bson.M{"student_id": studentID})
}

func (s *SuggestionStore) list(ctx context.Context, filter bson.M) ([]models.Suggestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	suggestions := make([]models.Suggestion, 0)
	if err := cursor.All(ctx, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (s *SuggestionStore) Update(ctx context.Context, sg models.Suggestion) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": sg.ID}, sg)
	if err != nil {
		return translateErr(err)
	}
	if result.MatchedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *SuggestionStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateErr(err)
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}
