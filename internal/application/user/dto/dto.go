package dto

import "helpdesk/internal/domain/user"

// UserDTO is the API representation of a user. The password hash is never
// exposed.
type UserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ToUserDTO converts a user domain entity to its API representation.
func ToUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:       u.ID(),
		Username: u.Username(),
		Email:    u.Email(),
		Role:     u.Role().String(),
	}
}
