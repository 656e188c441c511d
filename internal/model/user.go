package model

// User represents a user in the database.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse confirms a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the bearer token issued at login.
type LoginResponse struct {
	Token string `json:"token"`
}
