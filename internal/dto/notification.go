package dto

// UnreadCountResponse is the badge count of the notification bell.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
