package services

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GroupReaderSvc defines read operations for account groups.
type GroupReaderSvc interface {
	ListAll(ctx context.Context, sess *domain.Session) ([]domain.Group, error)
	ListMine(ctx context.Context, sess *domain.Session) ([]domain.Group, error)
	GetGroup(ctx context.Context, sess *domain.Session, groupID int64) (*domain.Group, error)
	Accounts(ctx context.Context, sess *domain.Session, groupID int64) ([]domain.Account, error)
	Balance(ctx context.Context, sess *domain.Session, groupID int64) (decimal.Decimal, error)
	Statistics(ctx context.Context, sess *domain.Session, groupID int64) (*domain.GroupStatistics, error)
}

// GroupWriterSvc defines group commands. Each returns a fresh read.
type GroupWriterSvc interface {
	CreateGroup(ctx context.Context, sess *domain.Session, cmd domain.NewGroup) (*domain.Group, error)
	DeleteGroup(ctx context.Context, sess *domain.Session, groupID int64) ([]domain.Group, error)
	AddAccount(ctx context.Context, sess *domain.Session, groupID, accountID int64) ([]domain.Account, error)
	RemoveAccount(ctx context.Context, sess *domain.Session, groupID, accountID int64) ([]domain.Account, error)
	SetStatus(ctx context.Context, sess *domain.Session, groupID int64, status domain.AccountStatus) (*domain.Group, error)
}

// GroupSvcFacade combines all group operations.
type GroupSvcFacade interface {
	GroupReaderSvc
	GroupWriterSvc
}

// DecoratorSvc manages account feature add-ons. Commands return the
// re-read decorator list of the account.
type DecoratorSvc interface {
	List(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Decorator, error)
	Active(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Decorator, error)
	Features(ctx context.Context, sess *domain.Session, accountID int64) ([]string, error)
	Info(ctx context.Context, sess *domain.Session) (string, error)
	Add(ctx context.Context, sess *domain.Session, cmd domain.NewDecorator) ([]domain.Decorator, error)
	Activate(ctx context.Context, sess *domain.Session, accountID, decoratorID int64) ([]domain.Decorator, error)
	Remove(ctx context.Context, sess *domain.Session, accountID, decoratorID int64) ([]domain.Decorator, error)
	ApplyMonthlyFees(ctx context.Context, sess *domain.Session) error
}
