package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type interestService struct {
	BaseService
	api gateways.Factory[gateways.InterestAPI]
}

// NewInterestService creates the interest-strategy client. It renders the
// figures the core banking API computes and never does interest arithmetic.
func NewInterestService(api gateways.Factory[gateways.InterestAPI]) portssvc.InterestSvc {
	return &interestService{api: api}
}

func (s *interestService) GetReport(ctx context.Context, sess *domain.Session, accountID int64) (*domain.InterestReport, error) {
	return s.api(sess).InterestReport(ctx, accountID)
}

func (s *interestService) ChangeStrategy(ctx context.Context, sess *domain.Session, accountID int64, strategyKey string) (*domain.InterestReport, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageInterest); err != nil {
		return nil, err
	}
	strategyKey = strings.TrimSpace(strategyKey)
	if strategyKey == "" {
		return nil, apperrors.NewValidationError("strategyName", "strategy is required")
	}
	client := s.api(sess)
	if err := client.ChangeStrategy(ctx, accountID, strategyKey); err != nil {
		s.LogError(ctx, err, "Failed to change interest strategy", slog.Int64("account_id", accountID), slog.String("strategy", strategyKey))
		return nil, err
	}
	s.LogInfo(ctx, "Interest strategy changed", slog.Int64("account_id", accountID), slog.String("strategy", strategyKey))
	return client.InterestReport(ctx, accountID)
}

func (s *interestService) Strategies(ctx context.Context, sess *domain.Session) ([]domain.InterestStrategy, error) {
	return s.api(sess).Strategies(ctx)
}

func (s *interestService) SupportedStrategies(ctx context.Context, sess *domain.Session, accountType domain.AccountType) ([]domain.InterestStrategy, error) {
	if accountType == "" {
		return nil, apperrors.NewValidationError("accountType", "account type is required")
	}
	return s.api(sess).StrategiesFor(ctx, accountType)
}

func (s *interestService) Compare(ctx context.Context, sess *domain.Session, accountID int64, strategy1, strategy2 string) (*domain.StrategyComparison, error) {
	if strategy1 == "" || strategy2 == "" {
		return nil, apperrors.NewValidationError("strategy", "two strategies are required")
	}
	return s.api(sess).CompareStrategies(ctx, accountID, strategy1, strategy2)
}

func (s *interestService) FutureInterest(ctx context.Context, sess *domain.Session, accountID int64, months int) (decimal.Decimal, error) {
	if months <= 0 {
		return decimal.Zero, apperrors.NewValidationError("months", "months must be greater than zero")
	}
	return s.api(sess).FutureInterest(ctx, accountID, months)
}

func (s *interestService) EffectiveRate(ctx context.Context, sess *domain.Session, accountID int64) (decimal.Decimal, error) {
	return s.api(sess).EffectiveRate(ctx, accountID)
}

func (s *interestService) Apply(ctx context.Context, sess *domain.Session, accountID int64) (*domain.InterestReport, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageInterest); err != nil {
		return nil, err
	}
	client := s.api(sess)
	credited, err := client.ApplyInterest(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Interest applied", slog.Int64("account_id", accountID), slog.String("amount", credited.String()))
	return client.InterestReport(ctx, accountID)
}

func (s *interestService) ApplyAll(ctx context.Context, sess *domain.Session) error {
	if err := s.Authorize(ctx, sess, domain.CapManageInterest); err != nil {
		return err
	}
	if err := s.api(sess).ApplyInterestToAll(ctx); err != nil {
		return err
	}
	s.LogInfo(ctx, "Interest applied to all accounts")
	return nil
}
