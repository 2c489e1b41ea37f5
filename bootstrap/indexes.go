package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureReviewIndexes keeps one review per (userId, eventId).
func EnsureReviewIndexes(db *mongo.Database) error {
	_, err := db.Collection("reviews").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "eventId", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_user_event"),
		},
	)
	return err
}

// EnsureUserActivityIndexes rejects a second answer for the same activity
// from the same user at the database level.
func EnsureUserActivityIndexes(db *mongo.Database) error {
	_, err := db.Collection("user_activities").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "activityId", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_user_activity"),
		},
	)
	return err
}
