package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
)

type FacultyStore struct {
	collection *mongo.Collection
}

func NewFacultyStore(db *mongo.Database) *FacultyStore {
	return &FacultyStore{collection: db.Collection("faculties")}
}

func (s *FacultyStore) Insert(ctx context.Context, f models.Faculty) (models.Faculty, error) {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, f); err != nil {
		return models.Faculty{}, translateErr(err)
	}
	return f, nil
}

func (s *FacultyStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Faculty, error) {
	var f models.Faculty
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	return f, translateErr(err)
}

func (s *FacultyStore) FindByEmail(ctx context.Context, email string) (models.Faculty, error) {
	var f models.Faculty
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&f)
	return f, translateErr(err)
}

func (s *FacultyStore) List(ctx context.Context) ([]models.Faculty, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	faculties := make([]models.Faculty, 0)
	if err := cursor.All(ctx, &faculties); err != nil {
		return nil, err
	}
	return faculties, nil
}

func (s *FacultyStore) Update(ctx context.Context, f models.Faculty) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return translateErr(err)
	}
	if result.MatchedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *FacultyStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateErr(err)
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}
