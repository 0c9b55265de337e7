// Package file keeps portal sessions in a local JSON file. The CLI uses it to
// stay logged in between invocations.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
	"github.com/SscSPs/bank_portal/internal/models"
	"github.com/SscSPs/bank_portal/internal/utils"
	"github.com/SscSPs/bank_portal/internal/utils/mapping"
)

// SessionRepository stores sessions in a single 0600 JSON file keyed by session ID.
type SessionRepository struct {
	mu     sync.Mutex
	path   string
	sealer *utils.Sealer
	now    func() time.Time
}

// NewSessionRepository creates a store backed by path. The file is created on first save.
func NewSessionRepository(path string, sealer *utils.Sealer) *SessionRepository {
	return &SessionRepository{path: path, sealer: sealer, now: time.Now}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func (r *SessionRepository) SaveSession(ctx context.Context, session *domain.Session) error {
	m, err := mapping.ToModelSession(r.sealer, session)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}
	all[m.SessionID] = m
	return r.store(all)
}

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return nil, err
	}
	m, ok := all[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if !m.ExpiresAt.IsZero() && r.now().After(m.ExpiresAt) {
		delete(all, sessionID)
		if err := r.store(all); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrNotFound
	}
	return mapping.ToDomainSession(r.sealer, m)
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := all[sessionID]; !ok {
		return nil
	}
	delete(all, sessionID)
	return r.store(all)
}

func (r *SessionRepository) load() (map[string]models.Session, error) {
	all := make(map[string]models.Session)
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return all, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return all, nil
	}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to decode session file %s: %w", r.path, err)
	}
	return all, nil
}

func (r *SessionRepository) store(all map[string]models.Session) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
