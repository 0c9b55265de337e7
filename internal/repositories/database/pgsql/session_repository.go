package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
	"github.com/SscSPs/bank_portal/internal/models"
	"github.com/SscSPs/bank_portal/internal/utils"
	"github.com/SscSPs/bank_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	BaseRepository
	sealer *utils.Sealer
}

func newPgxSessionRepository(db *pgxpool.Pool, sealer *utils.Sealer) *PgxSessionRepository {
	return &PgxSessionRepository{BaseRepository: BaseRepository{Pool: db}, sealer: sealer}
}

// Ensure PgxSessionRepository implements the session ports
var (
	_ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)
	_ portsrepo.SessionPurger           = (*PgxSessionRepository)(nil)
)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session *domain.Session) error {
	modelSession, err := mapping.ToModelSession(r.sealer, session)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO sessions (session_id, user_id, sealed_token, profile, created_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (session_id) DO UPDATE SET
            sealed_token = EXCLUDED.sealed_token,
            profile = EXCLUDED.profile,
            expires_at = EXCLUDED.expires_at;
    `
	_, err = r.Pool.Exec(ctx, query,
		modelSession.SessionID,
		modelSession.UserID,
		modelSession.SealedToken,
		modelSession.Profile,
		modelSession.CreatedAt,
		modelSession.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
		SELECT session_id, user_id, sealed_token, profile, created_at, expires_at
		FROM sessions
		WHERE session_id = $1 AND expires_at > $2;
	`
	var modelSession models.Session
	err := r.Pool.QueryRow(ctx, query, sessionID, time.Now()).Scan(
		&modelSession.SessionID,
		&modelSession.UserID,
		&modelSession.SealedToken,
		&modelSession.Profile,
		&modelSession.CreatedAt,
		&modelSession.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session by ID: %w", err)
	}
	return mapping.ToDomainSession(r.sealer, modelSession)
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1;`, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// PurgeExpiredSessions removes sessions past their expiry in one transaction.
func (r *PgxSessionRepository) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1;`, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
