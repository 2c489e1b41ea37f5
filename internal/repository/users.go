package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"icebreaker_server/internal/models"
)

type UserRepo struct {
	DB *mongo.Database
}

func (r *UserRepo) col() *mongo.Collection {
	return r.DB.Collection("users")
}

func (r *UserRepo) Insert(ctx context.Context, user models.User) error {
	_, err := r.col().InsertOne(ctx, user)
	return err
}

func (r *UserRepo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	err := r.col().FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

// FindInEvent looks the user up under their event; a user document exists
// once per (userId, eventId).
func (r *UserRepo) FindInEvent(ctx context.Context, userID, eventID string) (*models.User, error) {
	var user models.User
	err := r.col().FindOne(ctx, bson.M{"userId": userID, "eventId": eventID}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, mapFindErr(err)
	}
	return &user, nil
}

func (r *UserRepo) ListByEvent(ctx context.Context, eventID string) ([]models.User, error) {
	cursor, err := r.col().Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) FindByIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	cursor, err := r.col().Find(ctx, bson.M{"userId": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, userID string, updates bson.M) error {
	if len(updates) == 0 {
		return nil
	}
	res, err := r.col().UpdateOne(ctx, bson.M{"userId": userID}, bson.M{"$set": updates})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, userID string) error {
	res, err := r.col().DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
