package dto

// UserRequestDTO joins a participant to an event.
type UserRequestDTO struct {
	EventID     string `json:"eventId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type UserUpdateDTO struct {
	Name        *string `json:"name,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Description *string `json:"description,omitempty"`
}
