package models

import (
	"time"

	"github.com/google/uuid"
)

// UserActivity is one participant's answer to one activity. At most one
// exists per (userId, activityId); the unique index enforces it.
type UserActivity struct {
	UserActivityID string `bson:"userActivityId" json:"userActivityId"`
	ActivityID     string `bson:"activityId" json:"activityId"`
	UserID         string `bson:"userId" json:"userId"`
	GroupID        string `bson:"groupId,omitempty" json:"groupId,omitempty"`
	Notes          string `bson:"notes" json:"notes"`
	Date           string `bson:"date" json:"date"`
}

func NewUserActivity(activityID, userID, groupID, notes string) UserActivity {
	return UserActivity{
		UserActivityID: uuid.NewString(),
		ActivityID:     activityID,
		UserID:         userID,
		GroupID:        groupID,
		Notes:          notes,
		Date:           time.Now().UTC().Format(time.RFC3339),
	}
}
