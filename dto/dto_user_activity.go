package dto

type UserActivityRequestDTO struct {
	ActivityID string `json:"activityId"`
	UserID     string `json:"userId"`
	GroupID    string `json:"groupId,omitempty"`
	Notes      string `json:"notes"`
}

type UserActivityUpdateDTO struct {
	Notes   string `json:"notes"`
	GroupID string `json:"groupId,omitempty"`
}
