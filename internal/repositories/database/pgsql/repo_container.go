package pgsql

import (
	portsrepo "github.com/SscSPs/bank_portal/internal/core/ports/repositories"
	"github.com/SscSPs/bank_portal/internal/utils"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider creates the PostgreSQL backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool, sealer *utils.Sealer) portsrepo.RepositoryProvider {
	sessions := newPgxSessionRepository(dbPool, sealer)
	return portsrepo.RepositoryProvider{
		SessionRepo:   sessions,
		SessionPurger: sessions,
	}
}
