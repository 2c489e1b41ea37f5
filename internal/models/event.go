package models

import "github.com/google/uuid"

type Event struct {
	EventID           string   `bson:"eventId" json:"eventId"`
	Name              string   `bson:"name" json:"name"`
	Description       string   `bson:"description" json:"description"`
	Picture           *string  `bson:"picture,omitempty" json:"picture,omitempty"`
	ActivityIDs       []string `bson:"activityIds" json:"activityIds"`
	Open              bool     `bson:"open" json:"open"`
	ParticipantIDs    []string `bson:"participantIds" json:"participantIds"`
	CurrentActivityID *string  `bson:"currentActivityId,omitempty" json:"currentActivityId,omitempty"`
	ShowReview        bool     `bson:"showReview" json:"showReview"`
}

// EventSummary is the denormalized slice of an event embedded in every review.
type EventSummary struct {
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description" json:"description"`
	Picture     *string `bson:"picture" json:"picture"`
}

func NewEvent(name, description string, picture *string) Event {
	return Event{
		EventID:        uuid.NewString(),
		Name:           name,
		Description:    description,
		Picture:        picture,
		ActivityIDs:    []string{},
		Open:           true,
		ParticipantIDs: []string{},
	}
}

func (e Event) Summary() EventSummary {
	return EventSummary{
		Name:        e.Name,
		Description: e.Description,
		Picture:     e.Picture,
	}
}
