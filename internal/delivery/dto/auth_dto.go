package dto

// Request DTOs

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is shared by doctor and patient login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is the body of write endpoints, success or failure
type MessageResponse struct {
	Message string `json:"message,omitempty"`
}
