package models

import "github.com/google/uuid"

// GroupColors is the palette cycled over group numbers when pairing.
var GroupColors = []string{"red", "blue", "green", "yellow"}

// GroupActivity holds the pairing result for one activity. There is at most
// one per activityId; re-pairing replaces Groups in place and keeps the id.
type GroupActivity struct {
	GroupActivityID string      `bson:"groupActivityId" json:"groupActivityId"`
	ActivityID      string      `bson:"activityId" json:"activityId"`
	Groups          []GroupItem `bson:"groups" json:"groups"`
	Active          bool        `bson:"active" json:"active"`
	Share           bool        `bson:"share" json:"share"`
}

type GroupItem struct {
	GroupID      string        `bson:"groupId" json:"groupId"`
	GroupNumber  int           `bson:"groupNumber" json:"groupNumber"`
	GroupColor   string        `bson:"groupColor" json:"groupColor"`
	Participants []Participant `bson:"participants" json:"participants"`
}

func NewGroupActivity(activityID string, groups []GroupItem, share bool) GroupActivity {
	return GroupActivity{
		GroupActivityID: uuid.NewString(),
		ActivityID:      activityID,
		Groups:          groups,
		Active:          true,
		Share:           share,
	}
}

// GroupOf returns the group containing the given user, or nil.
func (ga GroupActivity) GroupOf(userID string) *GroupItem {
	for i := range ga.Groups {
		for _, p := range ga.Groups[i].Participants {
			if p.UserID == userID {
				return &ga.Groups[i]
			}
		}
	}
	return nil
}

// PartnerOf returns the first participant of the group other than the given
// user. For groups larger than two this picks the first other member in
// stored order.
func (g GroupItem) PartnerOf(userID string) *Participant {
	for i := range g.Participants {
		if g.Participants[i].UserID != userID {
			return &g.Participants[i]
		}
	}
	return nil
}
