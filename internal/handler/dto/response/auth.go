package response

import (
	"time"

	"bakehouse/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type LoginResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		LastLogin: u.LastLogin(),
	}
}
