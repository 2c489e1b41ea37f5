package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"icebreaker_server/internal/models"
)

type EventRepo struct {
	DB *mongo.Database
}

func (r *EventRepo) col() *mongo.Collection {
	return r.DB.Collection("events")
}

func (r *EventRepo) Insert(ctx context.Context, event models.Event) error {
	_, err := r.col().InsertOne(ctx, event)
	return err
}

func (r *EventRepo) FindByID(ctx context.Context, eventID string) (*models.Event, error) {
	var event models.Event
	err := r.col().FindOne(ctx, bson.M{"eventId": eventID}).Decode(&event)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &event, nil
}

func (r *EventRepo) List(ctx context.Context) ([]models.Event, error) {
	cursor, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Update applies a partial $set; callers build the updates map from the
// fields present in the request.
func (r *EventRepo) Update(ctx context.Context, eventID string, updates bson.M) error {
	if len(updates) == 0 {
		return nil
	}
	res, err := r.col().UpdateOne(ctx, bson.M{"eventId": eventID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepo) Delete(ctx context.Context, eventID string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepo) AttachActivity(ctx context.Context, eventID, activityID string) error {
	res, err := r.col().UpdateOne(ctx,
		bson.M{"eventId": eventID},
		bson.M{"$addToSet": bson.M{"activityIds": activityID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepo) DetachActivity(ctx context.Context, eventID, activityID string) error {
	res, err := r.col().UpdateOne(ctx,
		bson.M{"eventId": eventID},
		bson.M{"$pull": bson.M{"activityIds": activityID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepo) AddParticipant(ctx context.Context, eventID, userID string) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"eventId": eventID},
		bson.M{"$addToSet": bson.M{"participantIds": userID}},
	)
	return err
}

func (r *EventRepo) RemoveParticipant(ctx context.Context, eventID, userID string) error {
	_, err := r.col().UpdateOne(ctx,
		bson.M{"eventId": eventID},
		bson.M{"$pull": bson.M{"participantIds": userID}},
	)
	return err
}

// SetCurrentActivity moves the live-activity pointer; nil clears it.
func (r *EventRepo) SetCurrentActivity(ctx context.Context, eventID string, activityID *string) error {
	var update bson.M
	if activityID == nil {
		update = bson.M{"$unset": bson.M{"currentActivityId": ""}}
	} else {
		update = bson.M{"$set": bson.M{"currentActivityId": *activityID}}
	}
	res, err := r.col().UpdateOne(ctx, bson.M{"eventId": eventID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepo) SetShowReview(ctx context.Context, eventID string, show bool) error {
	res, err := r.col().UpdateOne(ctx,
		bson.M{"eventId": eventID},
		bson.M{"$set": bson.M{"showReview": show}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
