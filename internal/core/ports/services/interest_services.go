package services

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InterestSvc is the interest-strategy client. It never computes interest
// itself; every figure comes from the core banking API.
type InterestSvc interface {
	GetReport(ctx context.Context, sess *domain.Session, accountID int64) (*domain.InterestReport, error)

	// ChangeStrategy switches the strategy and returns the re-read report.
	ChangeStrategy(ctx context.Context, sess *domain.Session, accountID int64, strategyKey string) (*domain.InterestReport, error)

	Strategies(ctx context.Context, sess *domain.Session) ([]domain.InterestStrategy, error)
	SupportedStrategies(ctx context.Context, sess *domain.Session, accountType domain.AccountType) ([]domain.InterestStrategy, error)
	Compare(ctx context.Context, sess *domain.Session, accountID int64, strategy1, strategy2 string) (*domain.StrategyComparison, error)
	FutureInterest(ctx context.Context, sess *domain.Session, accountID int64, months int) (decimal.Decimal, error)
	EffectiveRate(ctx context.Context, sess *domain.Session, accountID int64) (decimal.Decimal, error)

	// Apply credits interest to one account and returns the re-read report.
	Apply(ctx context.Context, sess *domain.Session, accountID int64) (*domain.InterestReport, error)
	ApplyAll(ctx context.Context, sess *domain.Session) error
}
