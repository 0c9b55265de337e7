package services

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// UserReaderSvc defines read operations for users. Staff only.
type UserReaderSvc interface {
	ListUsers(ctx context.Context, sess *domain.Session) ([]domain.User, error)
	GetUser(ctx context.Context, sess *domain.Session, userID int64) (*domain.User, error)
	GetUserByUsername(ctx context.Context, sess *domain.Session, username string) (*domain.User, error)
	SearchUsers(ctx context.Context, sess *domain.Session, name string) ([]domain.User, error)
}

// UserWriterSvc defines user administration. Each returns a fresh read.
type UserWriterSvc interface {
	CreateUser(ctx context.Context, sess *domain.Session, cmd domain.NewUser) (*domain.User, error)
	SetActive(ctx context.Context, sess *domain.Session, userID int64, active bool) (*domain.User, error)
	AddRole(ctx context.Context, sess *domain.Session, userID int64, role domain.Role) (*domain.User, error)
}

// UserSvcFacade combines all user operations.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}

// NotificationSvc reads and updates the session user's inbox. Commands
// return the re-read inbox.
type NotificationSvc interface {
	List(ctx context.Context, sess *domain.Session) ([]domain.Notification, error)
	Unread(ctx context.Context, sess *domain.Session) ([]domain.Notification, error)
	MarkRead(ctx context.Context, sess *domain.Session, notificationID int64) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, sess *domain.Session) ([]domain.Notification, error)
	Delete(ctx context.Context, sess *domain.Session, notificationID int64) ([]domain.Notification, error)

	// UnreadCount returns the count seen by the session's background poller,
	// starting the poller on first use.
	UnreadCount(ctx context.Context, sess *domain.Session) (int, error)

	// StopPolling disposes of the session's poller.
	StopPolling(sessionID string)

	// Close stops every poller and waits for running polls until ctx is done.
	Close(ctx context.Context)
}
