package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"icebreaker_server/internal/models"
)

type ActivityRepo struct {
	DB *mongo.Database
}

func (r *ActivityRepo) col() *mongo.Collection {
	return r.DB.Collection("activities")
}

func (r *ActivityRepo) Insert(ctx context.Context, activity models.Activity) error {
	_, err := r.col().InsertOne(ctx, activity)
	return err
}

func (r *ActivityRepo) FindByID(ctx context.Context, activityID string) (*models.Activity, error) {
	var activity models.Activity
	err := r.col().FindOne(ctx, bson.M{"activityId": activityID}).Decode(&activity)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &activity, nil
}

func (r *ActivityRepo) FindByIDs(ctx context.Context, activityIDs []string) ([]models.Activity, error) {
	if len(activityIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.col().Find(ctx, bson.M{"activityId": bson.M{"$in": activityIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepo) ListByEvent(ctx context.Context, eventID string) ([]models.Activity, error) {
	cursor, err := r.col().Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepo) Delete(ctx context.Context, activityID string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"activityId": activityID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
