package dto

// Create / patch payloads for events.
type EventRequestDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Picture     *string `json:"picture,omitempty"`
}

type EventUpdateDTO struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Picture     *string `json:"picture,omitempty"`
	Open        *bool   `json:"open,omitempty"`
}

// CurrentActivityDTO moves the live-activity pointer; null clears it.
type CurrentActivityDTO struct {
	ActivityID *string `json:"activityId"`
}

type ReviewVisibilityDTO struct {
	ShowReview *bool `json:"showReview"`
}

type EventStatusDTO struct {
	Name string `json:"name"`
	Open bool   `json:"open"`
}
