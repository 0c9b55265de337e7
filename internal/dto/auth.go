package dto

import (
	"time"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// LoginRequest is the body of a login call.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToDomain converts the request to credentials.
func (r LoginRequest) ToDomain() domain.Credentials {
	return domain.Credentials{Username: r.Username, Password: r.Password}
}

// RegisterRequest is the body of a self-registration call.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	NationalID  string `json:"nationalId"`
}

// ToDomain converts the request to a registration. Self-registered users are customers.
func (r RegisterRequest) ToDomain() domain.Registration {
	return domain.Registration{
		Username:    r.Username,
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		NationalID:  r.NationalID,
		Roles:       []string{domain.RoleCustomer.WireName()},
	}
}

// LoginResponse represents the response for a successful login or registration.
type LoginResponse struct {
	Token         string       `json:"token"`
	TokenType     string       `json:"tokenType"`
	ExpiresAt     time.Time    `json:"expiresAt"`
	User          UserResponse `json:"user"`
	DashboardPath string       `json:"dashboardPath,omitempty"`
}
