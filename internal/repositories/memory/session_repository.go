// Package memory keeps portal sessions in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
)

// SessionRepository is an in-memory session store. It is the default backend of the portal.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

// NewSessionRepository creates an empty store.
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]domain.Session),
		now:      time.Now,
	}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSession(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	sess, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if sess.Expired(r.now()) {
		_ = r.DeleteSession(ctx, sessionID)
		return nil, apperrors.ErrNotFound
	}
	out := cloneSession(&sess)
	return &out, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func cloneSession(s *domain.Session) domain.Session {
	out := *s
	out.User.Roles = append([]string(nil), s.User.Roles...)
	return out
}
