package model

import "time"

// User represents a registered account
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Name         string    `json:"name"`
	Token        *string   `json:"-"` // Current session token, nil when logged out
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterUserRequest is the body of POST /api/users.
// Passwords are capped at 72 bytes, the most bcrypt will hash.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,maxbytes=72"`
	Name     string `json:"name" validate:"required,min=1,max=100"`
}

// LoginUserRequest is the body of POST /api/users/login
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1,max=100"`
}

// UpdateUserRequest is the body of PATCH /api/users/current.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	Password *string `json:"password,omitempty" validate:"omitnil,min=1,maxbytes=72"`
	Name     *string `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

// ToUserResponse strips credentials from a user
func ToUserResponse(u *User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}
