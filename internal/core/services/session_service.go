package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/SscSPs/bank_portal/internal/platform/metrics"
	"github.com/SscSPs/bank_portal/internal/utils"
)

// SessionEndFunc is told when a session is closed by logout or expiry.
type SessionEndFunc func(sessionID string)

// SessionService opens, resolves and closes portal sessions. It is the only
// component that writes session records.
type SessionService struct {
	BaseService
	repo portsrepo.SessionRepositoryFacade
	auth gateways.Factory[gateways.AuthAPI]
	ttl  time.Duration
	now  func() time.Time

	mu        sync.RWMutex
	listeners []SessionEndFunc

	// storeMu orders identity refreshes against deletes.
	storeMu sync.Mutex
}

// NewSessionService creates a session service whose sessions live for ttl.
func NewSessionService(repo portsrepo.SessionRepositoryFacade, auth gateways.Factory[gateways.AuthAPI], ttl time.Duration) *SessionService {
	return &SessionService{
		repo: repo,
		auth: auth,
		ttl:  ttl,
		now:  time.Now,
	}
}

var _ portssvc.SessionSvcFacade = (*SessionService)(nil)

// OnSessionEnd registers fn to be told about closed sessions.
func (s *SessionService) OnSessionEnd(fn SessionEndFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *SessionService) notifyEnd(sessionID string) {
	s.mu.RLock()
	listeners := append([]SessionEndFunc(nil), s.listeners...)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn(sessionID)
	}
}

func (s *SessionService) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" {
		return nil, apperrors.NewValidationError("username", "username is required")
	}
	if creds.Password == "" {
		return nil, apperrors.NewValidationError("password", "password is required")
	}

	result, err := s.auth(nil).Login(ctx, creds)
	if err != nil {
		s.LogInfo(ctx, "Login rejected", slog.String("username", creds.Username), slog.String("error", err.Error()))
		return nil, err
	}
	return s.open(ctx, result)
}

func (s *SessionService) Register(ctx context.Context, reg domain.Registration) (*domain.Session, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	switch {
	case reg.Username == "":
		return nil, apperrors.NewValidationError("username", "username is required")
	case reg.Password == "":
		return nil, apperrors.NewValidationError("password", "password is required")
	case !strings.Contains(reg.Email, "@"):
		return nil, apperrors.NewValidationError("email", "a valid email is required")
	}

	result, err := s.auth(nil).Register(ctx, reg)
	if err != nil {
		return nil, err
	}
	return s.open(ctx, result)
}

func (s *SessionService) open(ctx context.Context, result *domain.AuthResult) (*domain.Session, error) {
	id, err := utils.NewSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}
	now := s.now()
	sess := &domain.Session{
		ID:        id,
		Token:     result.Token,
		User:      result.User,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.SaveSession(ctx, sess); err != nil {
		s.LogError(ctx, err, "Failed to save session", slog.Int64("user_id", sess.User.ID))
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	s.LogInfo(ctx, "Session opened", slog.Int64("user_id", sess.User.ID), slog.String("username", sess.User.Username))
	return sess, nil
}

func (s *SessionService) ResolveSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if sess.Expired(s.now()) {
		s.end(ctx, sess.ID)
		return nil, apperrors.ErrSessionExpired
	}
	return sess, nil
}

func (s *SessionService) RefreshIdentity(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	user, err := s.auth(sess).Me(ctx)
	if err != nil {
		return nil, err
	}

	// The session may have been closed while /auth/me was in flight.
	s.storeMu.Lock()
	defer s.storeMu.Unlock()
	current, err := s.repo.FindSessionByID(ctx, sess.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if current.Expired(s.now()) {
		return nil, apperrors.ErrSessionExpired
	}
	updated := *current
	updated.User = *user
	if err := s.repo.SaveSession(ctx, &updated); err != nil {
		s.LogError(ctx, err, "Failed to store refreshed identity", slog.Int64("user_id", user.ID))
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	s.LogDebug(ctx, "Identity refreshed", slog.Int64("user_id", user.ID), slog.Any("roles", user.Roles))
	return &updated, nil
}

func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	if err := s.deleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.notifyEnd(sessionID)
	s.LogInfo(ctx, "Session closed")
	return nil
}

// ExpireSession clears a session whose upstream token was rejected.
func (s *SessionService) ExpireSession(ctx context.Context, sess *domain.Session) {
	if sess == nil {
		return
	}
	metrics.RecordSessionExpired()
	s.LogInfo(ctx, "Upstream rejected session token, clearing session", slog.Int64("user_id", sess.User.ID))
	s.end(ctx, sess.ID)
}

func (s *SessionService) end(ctx context.Context, sessionID string) {
	if err := s.deleteSession(ctx, sessionID); err != nil {
		s.LogError(ctx, err, "Failed to delete session")
	}
	s.notifyEnd(sessionID)
}

func (s *SessionService) deleteSession(ctx context.Context, sessionID string) error {
	s.storeMu.Lock()
	defer s.storeMu.Unlock()
	return s.repo.DeleteSession(ctx, sessionID)
}
