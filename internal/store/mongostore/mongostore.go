// Package mongostore implements the store interfaces on MongoDB.
package mongostore

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/upadhyayaniket29/student-management-system/internal/store"
)

// translateErr maps driver errors onto the store sentinels.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	default:
		return err
	}
}

// lookupStage joins a single referenced document under `as`, tolerating a
// dangling reference (the joined field is simply absent).
func lookupStage(from, localField, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$" + as},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func sortNewestFirst() bson.D {
	return bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
}
