package dto

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
	Role  string `json:"role"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
