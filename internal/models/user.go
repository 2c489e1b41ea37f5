package models

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	UserID      string `bson:"userId" json:"userId"`
	EventID     string `bson:"eventId" json:"eventId"`
	Name        string `bson:"name" json:"name"`
	Email       string `bson:"email" json:"email"`
	Icon        string `bson:"icon" json:"icon"`
	Description string `bson:"description" json:"description"`
	Role        string `bson:"role" json:"role"`
	// PasswordHash is only set for admin accounts that can log in directly.
	PasswordHash string `bson:"passwordHash,omitempty" json:"-"`
}

// Participant is the projection of a user embedded in group assignments.
type Participant struct {
	UserID      string `bson:"userId" json:"userId"`
	Name        string `bson:"name" json:"name"`
	Icon        string `bson:"icon" json:"icon"`
	Description string `bson:"description" json:"description"`
	Email       string `bson:"email" json:"email"`
}

func (u User) Participant() Participant {
	return Participant{
		UserID:      u.UserID,
		Name:        u.Name,
		Icon:        u.Icon,
		Description: u.Description,
		Email:       u.Email,
	}
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
