package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
)

type FeeStore struct {
	collection *mongo.Collection
}

func NewFeeStore(db *mongo.Database) *FeeStore {
	return &FeeStore{collection: db.Collection("fees")}
}

func (s *FeeStore) Insert(ctx context.Context, f models.Fee) (models.Fee, error) {
	if f.ID.IsZero() {
		f.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, f); err != nil {
		return models.Fee{}, translateErr(err)
	}
	return f, nil
}

func (s *FeeStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Fee, error) {
	var f models.Fee
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	return f, translateErr(err)
}

func (s *FeeStore) ListDetails(ctx context.Context) ([]models.FeeDetail, error) {
	return s.aggregateDetails(ctx, nil)
}

func (s *FeeStore) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.FeeDetail, error) {
	match := bson.D{{Key: "$match", Value: bson.D{{Key: "student_id", Value: studentID}}}}
	return s.aggregateDetails(ctx, []bson.D{match})
}

func (s *FeeStore) aggregateDetails(ctx context.Context, head []bson.D) ([]models.FeeDetail, error) {
	pipeline := mongo.Pipeline{}
	pipeline = append(pipeline, head...)
	pipeline = append(pipeline, lookupStage("users", "student_id", "student")...)
	pipeline = append(pipeline, lookupStage("courses", "course_id", "course")...)
	pipeline = append(pipeline, sortNewestFirst())

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	details := make([]models.FeeDetail, 0)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *FeeStore) Update(ctx context.Context, f models.Fee) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return translateErr(err)
	}
	if result.MatchedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}

// Stats aggregates billing totals across all fees.
func (s *FeeStore) Stats(ctx context.Context) (models.FeeStats, error) {
	pipeline := mongo.Pipeline{
		{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: nil},
				{Key: "total_amount", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
				{Key: "paid_amount", Value: bson.D{{Key: "$sum", Value: bson.D{
					{Key: "$cond", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$status", models.FeePaid}}},
						"$amount",
						0,
					}},
				}}}},
				{Key: "pending_amount", Value: bson.D{{Key: "$sum", Value: bson.D{
					{Key: "$cond", Value: bson.A{
						bson.D{{Key: "$eq", Value: bson.A{"$status", models.FeePending}}},
						"$amount",
						0,
					}},
				}}}},
			}},
		},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return models.FeeStats{}, err
	}
	defer cursor.Close(ctx)

	var results []models.FeeStats
	if err := cursor.All(ctx, &results); err != nil {
		return models.FeeStats{}, err
	}
	if len(results) == 0 {
		return models.FeeStats{}, nil
	}
	return results[0], nil
}
