package models

// RegisterRequest is the JSON body of POST /auth/register.
// All four fields are required.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginRequest is the JSON body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest is the JSON body of POST /tasks.
// Both fields are required.
type CreateTaskRequest struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// AuthResponse is the success body of register and login: the user record
// (credential and role-foreign-key fields stripped via their JSON tags)
// plus the freshly signed token.
type AuthResponse struct {
	User
	Token string `json:"token"`
}

// MessageResponse is the uniform body of every error response. It carries a
// single human-readable message and never internal identifiers, stack traces,
// or storage-engine error text.
type MessageResponse struct {
	Message string `json:"message"`
}
