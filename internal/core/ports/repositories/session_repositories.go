package repositories

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// SessionReader defines read operations for portal sessions.
type SessionReader interface {
	// FindSessionByID returns apperrors.ErrNotFound when the session is unknown or expired.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionWriter defines write operations for portal sessions.
type SessionWriter interface {
	// SaveSession creates or replaces a session.
	SaveSession(ctx context.Context, session *domain.Session) error

	// DeleteSession removes a session. Deleting an unknown session is not an error.
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionRepositoryFacade combines all session operations.
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}

// SessionPurger removes expired sessions from stores without native expiry.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
