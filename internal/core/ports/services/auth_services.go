package services

import (
	"context"
	"time"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// SessionResolverSvc turns a portal session id back into a live session.
type SessionResolverSvc interface {
	// ResolveSession returns apperrors.ErrSessionExpired when the session is unknown or past its expiry.
	ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionWriterSvc defines the session lifecycle.
type SessionWriterSvc interface {
	// Login authenticates against the core banking API and opens a session.
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)

	// Register creates a user and opens a session for them.
	Register(ctx context.Context, reg domain.Registration) (*domain.Session, error)

	// RefreshIdentity re-reads the user profile from the core banking API and stores it.
	// It returns apperrors.ErrSessionExpired if the session closed in the meantime.
	RefreshIdentity(ctx context.Context, sess *domain.Session) (*domain.Session, error)

	// Logout closes a session. Closing an unknown session is not an error.
	Logout(ctx context.Context, sessionID string) error

	// ExpireSession clears a session the core banking API no longer accepts.
	ExpireSession(ctx context.Context, sess *domain.Session)
}

// SessionSvcFacade combines all session operations.
type SessionSvcFacade interface {
	SessionResolverSvc
	SessionWriterSvc
}

// NavigationSvc resolves the menu of a session.
type NavigationSvc interface {
	// Menu returns apperrors.ErrIdentityUnresolved while the user's roles are unknown.
	Menu(ctx context.Context, sess *domain.Session) (*domain.Menu, error)
}

// TokenSvc issues the portal's own access tokens.
type TokenSvc interface {
	// GenerateAccessToken signs a token whose subject is the session id.
	GenerateAccessToken(ctx context.Context, sess *domain.Session) (string, time.Time, error)
}
