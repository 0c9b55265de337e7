// Package redis keeps portal sessions in Redis so several portal replicas can share them.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
	"github.com/SscSPs/bank_portal/internal/models"
	"github.com/SscSPs/bank_portal/internal/utils"
	"github.com/SscSPs/bank_portal/internal/utils/mapping"
	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "bank_portal:session:"

// SessionRepository stores sealed sessions as JSON values that expire with the session.
type SessionRepository struct {
	client goredis.UniversalClient
	sealer *utils.Sealer
	now    func() time.Time
}

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", addr, err)
	}
	return client, nil
}

// NewSessionRepository wraps an existing client.
func NewSessionRepository(client goredis.UniversalClient, sealer *utils.Sealer) *SessionRepository {
	return &SessionRepository{client: client, sealer: sealer, now: time.Now}
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *SessionRepository) SaveSession(ctx context.Context, session *domain.Session) error {
	m, err := mapping.ToModelSession(r.sealer, session)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	var ttl time.Duration
	if !session.ExpiresAt.IsZero() {
		ttl = session.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return r.DeleteSession(ctx, session.ID)
		}
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}
	var m models.Session
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return mapping.ToDomainSession(r.sealer, m)
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}
