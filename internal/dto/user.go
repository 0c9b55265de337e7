package dto

import (
	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// UserResponse is the public view of a user. Roles are reported without the wire prefix.
type UserResponse struct {
	UserID      int64         `json:"userId"`
	Username    string        `json:"username"`
	FullName    string        `json:"fullName"`
	Email       string        `json:"email"`
	PhoneNumber string        `json:"phoneNumber,omitempty"`
	Roles       []domain.Role `json:"roles"`
	IsActive    bool          `json:"isActive"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:      u.ID,
		Username:    u.Username,
		FullName:    u.DisplayName(),
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Roles:       u.RoleSet().Sorted(),
		IsActive:    u.IsActive,
	}
}

// ToListUserResponse converts a slice of users.
func ToListUserResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

// CreateUserRequest is the staff-side user creation body.
type CreateUserRequest struct {
	Username    string   `json:"username" binding:"required,min=3,max=50"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	FirstName   string   `json:"firstName" binding:"required"`
	LastName    string   `json:"lastName" binding:"required"`
	PhoneNumber string   `json:"phoneNumber"`
	Roles       []string `json:"roles"`
}

// ToDomain converts the request to a user command.
func (r CreateUserRequest) ToDomain() domain.NewUser {
	return domain.NewUser{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Roles:       r.Roles,
	}
}

// SetUserActiveRequest enables or disables a user.
type SetUserActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// AddRoleRequest grants a role.
type AddRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
