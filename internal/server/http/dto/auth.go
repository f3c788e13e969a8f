package dto

import "github.com/spicemart/spicemart/internal/domain/model"

// RegisterRequest describes the sign-up payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the credentials payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest carries the editable profile fields; empty fields keep
// their current values.
type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Role    int    `json:"role"`
}

// AuthResponse bundles the user with a fresh token.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ToUserResponse maps a domain user to its public view.
func ToUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    int(u.Role),
	}
}
