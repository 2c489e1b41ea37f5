package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"icebreaker_server/internal/models"
)

// Narrow store slices the handlers consume. The mongo repos and the review
// service satisfy them; handler tests swap in fakes.

type activityStore interface {
	Insert(ctx context.Context, activity models.Activity) error
	FindByID(ctx context.Context, activityID string) (*models.Activity, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.Activity, error)
	Delete(ctx context.Context, activityID string) error
}

type activityFinder interface {
	FindByID(ctx context.Context, activityID string) (*models.Activity, error)
}

// activityCleaner drops all documents hanging off one activity.
type activityCleaner interface {
	DeleteByActivity(ctx context.Context, activityID string) error
}

type eventRoster interface {
	FindByID(ctx context.Context, eventID string) (*models.Event, error)
	AttachActivity(ctx context.Context, eventID, activityID string) error
	DetachActivity(ctx context.Context, eventID, activityID string) error
}

type participantRoster interface {
	FindByID(ctx context.Context, eventID string) (*models.Event, error)
	AddParticipant(ctx context.Context, eventID, userID string) error
	RemoveParticipant(ctx context.Context, eventID, userID string) error
}

type userStore interface {
	Insert(ctx context.Context, user models.User) error
	FindByID(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, userID string, updates bson.M) error
	Delete(ctx context.Context, userID string) error
}

type answerStore interface {
	Insert(ctx context.Context, ua models.UserActivity) error
	FindByUserAndActivity(ctx context.Context, userID, activityID string) (*models.UserActivity, error)
	ListAll(ctx context.Context) ([]models.UserActivity, error)
	UpdateNotes(ctx context.Context, userID, activityID, notes, groupID string) error
	Delete(ctx context.Context, userID, activityID string) error
}

type reviewRefresher interface {
	RefreshLater(userID, eventID string)
	RefreshEventLater(eventID string)
}

type reviewDeleter interface {
	Delete(ctx context.Context, userID, eventID string) error
}
