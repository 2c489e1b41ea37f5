package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"icebreaker_server/internal/models"
)

type UserActivityRepo struct {
	DB *mongo.Database
}

func (r *UserActivityRepo) col() *mongo.Collection {
	return r.DB.Collection("user_activities")
}

// Insert stores a new answer. The unique (userId, activityId) index turns a
// second submission into ErrDuplicate without touching the first one.
func (r *UserActivityRepo) Insert(ctx context.Context, ua models.UserActivity) error {
	_, err := r.col().InsertOne(ctx, ua)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *UserActivityRepo) FindByUserAndActivity(ctx context.Context, userID, activityID string) (*models.UserActivity, error) {
	var ua models.UserActivity
	err := r.col().FindOne(ctx, bson.M{"userId": userID, "activityId": activityID}).Decode(&ua)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &ua, nil
}

func (r *UserActivityRepo) ListAll(ctx context.Context) ([]models.UserActivity, error) {
	cursor, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var all []models.UserActivity
	if err := cursor.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *UserActivityRepo) ListForUser(ctx context.Context, userID string, activityIDs []string) ([]models.UserActivity, error) {
	if len(activityIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.col().Find(ctx, bson.M{
		"userId":     userID,
		"activityId": bson.M{"$in": activityIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []models.UserActivity
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *UserActivityRepo) ListForUsers(ctx context.Context, userIDs, activityIDs []string) ([]models.UserActivity, error) {
	if len(userIDs) == 0 || len(activityIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.col().Find(ctx, bson.M{
		"userId":     bson.M{"$in": userIDs},
		"activityId": bson.M{"$in": activityIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []models.UserActivity
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *UserActivityRepo) UpdateNotes(ctx context.Context, userID, activityID, notes, groupID string) error {
	updates := bson.M{
		"notes": notes,
		"date":  time.Now().UTC().Format(time.RFC3339),
	}
	if groupID != "" {
		updates["groupId"] = groupID
	}
	res, err := r.col().UpdateOne(ctx,
		bson.M{"userId": userID, "activityId": activityID},
		bson.M{"$set": updates},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserActivityRepo) Delete(ctx context.Context, userID, activityID string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"userId": userID, "activityId": activityID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByActivity removes every answer to an activity; used when the
// activity itself is deleted.
func (r *UserActivityRepo) DeleteByActivity(ctx context.Context, activityID string) error {
	_, err := r.col().DeleteMany(ctx, bson.M{"activityId": activityID})
	return err
}
