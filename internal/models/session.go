package models

import (
	"time"
)

// Session is the stored form of a portal session.
// The upstream bearer token is kept sealed and the user profile as JSON.
type Session struct {
	SessionID   string    `db:"session_id" json:"sessionID"`
	UserID      int64     `db:"user_id" json:"userID"`
	SealedToken string    `db:"sealed_token" json:"sealedToken"`
	Profile     []byte    `db:"profile" json:"profile"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	ExpiresAt   time.Time `db:"expires_at" json:"expiresAt"`
}
