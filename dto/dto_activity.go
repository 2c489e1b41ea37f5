package dto

type ActivityRequestDTO struct {
	EventID         string `json:"eventId"`
	Type            string `json:"type"`
	Title           string `json:"title"`
	Question        string `json:"question"`
	NotePlaceholder string `json:"notePlaceholder,omitempty"`
}
