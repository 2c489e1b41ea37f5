package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"icebreaker_server/internal/models"
)

type ReviewRepo struct {
	DB *mongo.Database
}

func (r *ReviewRepo) col() *mongo.Collection {
	return r.DB.Collection("reviews")
}

func (r *ReviewRepo) FindByUserAndEvent(ctx context.Context, userID, eventID string) (*models.Review, error) {
	var review models.Review
	err := r.col().FindOne(ctx, bson.M{"userId": userID, "eventId": eventID}).Decode(&review)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &review, nil
}

// Upsert writes a freshly built review under the (userId, eventId) unique
// key. $setOnInsert keeps reviewId and createdAt stable across refreshes;
// everything derived is overwritten and updatedAt bumped.
func (r *ReviewRepo) Upsert(ctx context.Context, review models.Review) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"userId": review.UserID, "eventId": review.EventID},
		bson.M{
			"$set": bson.M{
				"event":      review.Event,
				"activities": review.Activities,
				"updatedAt":  time.Now().UTC(),
			},
			"$setOnInsert": bson.M{
				"reviewId":  review.ReviewID,
				"userId":    review.UserID,
				"eventId":   review.EventID,
				"createdAt": review.CreatedAt,
			},
		},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (r *ReviewRepo) Delete(ctx context.Context, userID, eventID string) error {
	_, err := r.col().DeleteOne(ctx, bson.M{"userId": userID, "eventId": eventID})
	return err
}
