package domain

// Notification is a message addressed to a user.
type Notification struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	Channel       string    `json:"channel"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     Timestamp `json:"createdAt"`
	ReadAt        Timestamp `json:"readAt"`
	TransactionID string    `json:"transactionId,omitempty"`
}

// UnreadCount returns how many notifications are unread.
func UnreadCount(ns []Notification) int {
	n := 0
	for _, x := range ns {
		if !x.IsRead {
			n++
		}
	}
	return n
}
