package domain

import "encoding/json"

// User is the profile of a portal user as reported by the core banking API.
type User struct {
	ID          int64     `json:"userId"`
	Username    string    `json:"username"`
	FullName    string    `json:"fullName"`
	FirstName   string    `json:"firstName,omitempty"`
	LastName    string    `json:"lastName,omitempty"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Roles       []string  `json:"roles"`
	IsActive    bool      `json:"isActive"`
	LastLogin   Timestamp `json:"lastLogin"`
}

// UnmarshalJSON accepts both the auth payload ("userId") and the user
// resource payload ("id").
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		AltID    int64 `json:"id"`
		IsActive *bool `json:"isActive"`
		Active   *bool `json:"active"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == 0 {
		u.ID = aux.AltID
	}
	switch {
	case aux.IsActive != nil:
		u.IsActive = *aux.IsActive
	case aux.Active != nil:
		u.IsActive = *aux.Active
	default:
		u.IsActive = true
	}
	return nil
}

// RoleSet returns the typed roles of the user.
func (u User) RoleSet() RoleSet {
	return ParseRoleSet(u.Roles)
}

// DisplayName returns the full name, falling back to the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.FirstName != "" || u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Username
}
