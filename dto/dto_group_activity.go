package dto

// GroupActivityRequestDTO configures a pairing run; Share left out keeps the
// previous grouping's visibility flag.
type GroupActivityRequestDTO struct {
	Share *bool `json:"share,omitempty"`
}
