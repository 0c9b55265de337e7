package services

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data.
type AccountReaderSvc interface {
	// ListAll returns every account. Staff only.
	ListAll(ctx context.Context, sess *domain.Session) ([]domain.Account, error)

	// ListMine returns the accounts of the session user.
	ListMine(ctx context.Context, sess *domain.Session) ([]domain.Account, error)

	// ListForUser returns the accounts of any user. Staff only.
	ListForUser(ctx context.Context, sess *domain.Session, userID int64) ([]domain.Account, error)

	GetAccount(ctx context.Context, sess *domain.Session, accountID int64) (*domain.Account, error)
	GetBalance(ctx context.Context, sess *domain.Session, accountID int64) (*domain.Balance, error)
	TotalBalance(ctx context.Context, sess *domain.Session) (*domain.TotalBalance, error)
	Exists(ctx context.Context, sess *domain.Session, accountNumber string) (bool, error)
	AccountSummary(ctx context.Context, sess *domain.Session, accountNumber string) (*domain.AccountSummary, error)
	UserSummary(ctx context.Context, sess *domain.Session, userID int64) (*domain.UserSummary, error)
}

// AccountWriterSvc defines account commands. Each returns a fresh read of
// the affected account.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, sess *domain.Session, cmd domain.NewAccount) (*domain.Account, error)
	OpenAccount(ctx context.Context, sess *domain.Session, cmd domain.NewAccount) (*domain.AccountOpening, error)
	UpdateAccount(ctx context.Context, sess *domain.Session, accountID int64, cmd domain.AccountUpdate) (*domain.Account, error)
	SetStatus(ctx context.Context, sess *domain.Session, accountID int64, status domain.AccountStatus) (*domain.Account, error)
	CloseAccount(ctx context.Context, sess *domain.Session, accountID int64) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}

// DashboardSvc aggregates the landing view.
type DashboardSvc interface {
	Dashboard(ctx context.Context, sess *domain.Session) (*domain.Dashboard, error)
}
