package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"icebreaker_server/internal/models"
)

type GroupActivityRepo struct {
	DB *mongo.Database
}

func (r *GroupActivityRepo) col() *mongo.Collection {
	return r.DB.Collection("group_activities")
}

func (r *GroupActivityRepo) Insert(ctx context.Context, ga models.GroupActivity) error {
	_, err := r.col().InsertOne(ctx, ga)
	return err
}

func (r *GroupActivityRepo) FindByID(ctx context.Context, groupActivityID string) (*models.GroupActivity, error) {
	var ga models.GroupActivity
	err := r.col().FindOne(ctx, bson.M{"groupActivityId": groupActivityID}).Decode(&ga)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &ga, nil
}

func (r *GroupActivityRepo) FindByActivity(ctx context.Context, activityID string) (*models.GroupActivity, error) {
	var ga models.GroupActivity
	err := r.col().FindOne(ctx, bson.M{"activityId": activityID}).Decode(&ga)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &ga, nil
}

func (r *GroupActivityRepo) ListByActivities(ctx context.Context, activityIDs []string) ([]models.GroupActivity, error) {
	if len(activityIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.col().Find(ctx, bson.M{"activityId": bson.M{"$in": activityIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var gas []models.GroupActivity
	if err := cursor.All(ctx, &gas); err != nil {
		return nil, err
	}
	return gas, nil
}

// ReplaceGroups swaps the groups array of an existing pairing in place; its
// groupActivityId stays stable across re-pairing runs.
func (r *GroupActivityRepo) ReplaceGroups(ctx context.Context, activityID string, groups []models.GroupItem, share bool) error {
	res, err := r.col().UpdateOne(ctx,
		bson.M{"activityId": activityID},
		bson.M{"$set": bson.M{
			"groups": groups,
			"active": true,
			"share":  share,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GroupActivityRepo) DeleteByActivity(ctx context.Context, activityID string) error {
	_, err := r.col().DeleteMany(ctx, bson.M{"activityId": activityID})
	return err
}
