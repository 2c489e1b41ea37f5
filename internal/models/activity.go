package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActivityIndividual = "individual"
	ActivityPartner    = "partner"
	ActivityGroup      = "group"
)

type Activity struct {
	ActivityID      string    `bson:"activityId" json:"activityId"`
	EventID         string    `bson:"eventId" json:"eventId"`
	Type            string    `bson:"type" json:"type"`
	Title           string    `bson:"title" json:"title"`
	Question        string    `bson:"question" json:"question"`
	NotePlaceholder string    `bson:"notePlaceholder,omitempty" json:"notePlaceholder,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

func NewActivity(eventID, typ, title, question, notePlaceholder string) Activity {
	return Activity{
		ActivityID:      uuid.NewString(),
		EventID:         eventID,
		Type:            NormalizeActivityType(typ),
		Title:           title,
		Question:        question,
		NotePlaceholder: notePlaceholder,
		CreatedAt:       time.Now().UTC(),
	}
}

// NormalizeActivityType maps the legacy two-valued kind ("self"/"partner")
// onto the current three-valued one.
func NormalizeActivityType(typ string) string {
	if typ == "self" {
		return ActivityIndividual
	}
	return typ
}

// Kind returns the normalized type; stored documents may still carry "self".
func (a Activity) Kind() string {
	return NormalizeActivityType(a.Type)
}

// Paired reports whether the activity is answered against a grouping
// (partner or group kind).
func (a Activity) Paired() bool {
	k := a.Kind()
	return k == ActivityPartner || k == ActivityGroup
}

func ValidActivityType(typ string) bool {
	switch typ {
	case ActivityIndividual, ActivityPartner, ActivityGroup, "self":
		return true
	}
	return false
}
