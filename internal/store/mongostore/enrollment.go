package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/upadhyayaniket29/student-management-system/internal/models"
)

type EnrollmentStore struct {
	collection *mongo.Collection
}

func NewEnrollmentStore(db *mongo.Database) *EnrollmentStore {
	return &EnrollmentStore{collection: db.Collection("enrollments")}
}

// Insert relies on the unique (student_id, course_id) index; a duplicate
// pair surfaces as store.ErrDuplicate.
func (s *EnrollmentStore) Insert(ctx context.Context, e models.Enrollment) (models.Enrollment, error) {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, e); err != nil {
		return models.Enrollment{}, translateErr(err)
	}
	return e, nil
}

func (s *EnrollmentStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Enrollment, error) {
	var e models.Enrollment
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&e)
	return e, translateErr(err)
}

func (s *EnrollmentStore) FindByStudentAndCourse(ctx context.Context, studentID, courseID primitive.ObjectID) (models.Enrollment, error) {
	var e models.Enrollment
	err := s.collection.FindOne(ctx, bson.M{"student_id": studentID, "course_id": courseID}).Decode(&e)
	return e, translateErr(err)
}

func (s *EnrollmentStore) ListDetails(ctx context.Context) ([]models.EnrollmentDetail, error) {
	return s.aggregateDetails(ctx, nil)
}

func (s *EnrollmentStore) ListByStudent(ctx context.Context, studentID primitive.ObjectID) ([]models.EnrollmentDetail, error) {
	match := bson.D{{Key: "$match", Value: bson.D{{Key: "student_id", Value: studentID}}}}
	return s.aggregateDetails(ctx, []bson.D{match})
}

func (s *EnrollmentStore) aggregateDetails(ctx context.Context, head []bson.D) ([]models.EnrollmentDetail, error) {
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

	details := make([]models.EnrollmentDetail, 0)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *EnrollmentStore) CountByStudent(ctx context.Context, studentID primitive.ObjectID) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{"student_id": studentID})
}

func (s *EnrollmentStore) CountByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{"course_id": courseID})
}

func (s *EnrollmentStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translateErr(err)
	}
	if result.DeletedCount == 0 {
		return translateErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *EnrollmentStore) DeleteByCourse(ctx context.Context, courseID primitive.ObjectID) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"course_id": courseID})
	if err != nil {
		return 0, translateErr(err)
	}
	return result.DeletedCount, nil
}
