package middleware

import (
	"context"
	"strconv"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// sessionKey stores the resolved portal session.
	sessionKey = contextKey("session")
	// userIDKey stores the authenticated user's ID as a string.
	userIDKey = contextKey("userID")
)

// WithSession returns a copy of ctx carrying the session.
func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	ctx = context.WithValue(ctx, sessionKey, sess)
	return context.WithValue(ctx, userIDKey, strconv.FormatInt(sess.User.ID, 10))
}

// GetSessionFromContext retrieves the session resolved by SessionAuth.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	if v, exists := c.Get(string(sessionKey)); exists {
		sess, ok := v.(*domain.Session)
		return sess, ok && sess != nil
	}
	sess, ok := c.Request.Context().Value(sessionKey).(*domain.Session)
	return sess, ok && sess != nil
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(string)
		return userID, ok
	}
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok
}
