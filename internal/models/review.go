package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is the denormalized per-(user, event) summary of answers. It is a
// derived cache: always reconstructible from events, activities,
// user_activities and group_activities, never a source of truth.
type Review struct {
	ReviewID   string           `bson:"reviewId" json:"reviewId"`
	UserID     string           `bson:"userId" json:"userId"`
	EventID    string           `bson:"eventId" json:"eventId"`
	CreatedAt  time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time        `bson:"updatedAt" json:"updatedAt"`
	Event      EventSummary     `bson:"event" json:"event"`
	Activities []ReviewActivity `bson:"activities" json:"activities"`
}

type ReviewActivity struct {
	ActivityID    string         `bson:"activityId" json:"activityId"`
	Type          string         `bson:"type" json:"type"`
	Title         string         `bson:"title" json:"title"`
	Question      string         `bson:"question" json:"question"`
	SelfAnswer    *string        `bson:"selfAnswer" json:"selfAnswer"`
	PartnerAnswer *PartnerAnswer `bson:"partnerAnswer" json:"partnerAnswer"`
	GroupColor    *string        `bson:"groupColor" json:"groupColor"`
	GroupNumber   *int           `bson:"groupNumber" json:"groupNumber"`
}

type PartnerAnswer struct {
	Notes       *string `bson:"notes" json:"notes"`
	Name        string  `bson:"name" json:"name"`
	Icon        string  `bson:"icon" json:"icon"`
	Email       *string `bson:"email" json:"email"`
	Description string  `bson:"description" json:"description"`
}

func NewReview(userID, eventID string, event EventSummary, activities []ReviewActivity) Review {
	now := time.Now().UTC()
	if activities == nil {
		activities = []ReviewActivity{}
	}
	return Review{
		ReviewID:   uuid.NewString(),
		UserID:     userID,
		EventID:    eventID,
		CreatedAt:  now,
		UpdatedAt:  now,
		Event:      event,
		Activities: activities,
	}
}
