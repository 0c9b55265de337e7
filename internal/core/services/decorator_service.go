package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bank_portal/internal/apperrors"
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/bank_portal/internal/core/ports/services"
)

type decoratorService struct {
	BaseService
	api gateways.Factory[gateways.DecoratorsAPI]
}

// NewDecoratorService creates the account feature client.
func NewDecoratorService(api gateways.Factory[gateways.DecoratorsAPI]) portssvc.DecoratorSvc {
	return &decoratorService{api: api}
}

func (s *decoratorService) List(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Decorator, error) {
	return s.api(sess).AccountDecorators(ctx, accountID)
}

func (s *decoratorService) Active(ctx context.Context, sess *domain.Session, accountID int64) ([]domain.Decorator, error) {
	return s.api(sess).ActiveDecorators(ctx, accountID)
}

func (s *decoratorService) Features(ctx context.Context, sess *domain.Session, accountID int64) ([]string, error) {
	return s.api(sess).AccountFeatures(ctx, accountID)
}

func (s *decoratorService) Info(ctx context.Context, sess *domain.Session) (string, error) {
	return s.api(sess).DecoratorsInfo(ctx)
}

func validateNewDecorator(cmd domain.NewDecorator) error {
	if !cmd.DecoratorType.Valid() {
		return apperrors.NewValidationError("decoratorType", "unknown decorator type")
	}
	if cmd.AccountID <= 0 {
		return apperrors.NewValidationError("accountId", "account is required")
	}
	switch cmd.DecoratorType {
	case domain.OverdraftProtection:
		if cmd.OverdraftLimit == nil || !cmd.OverdraftLimit.IsPositive() {
			return apperrors.NewValidationError("overdraftLimit", "overdraft limit must be greater than zero")
		}
	case domain.Insurance:
		if cmd.CoverageAmount == nil || !cmd.CoverageAmount.IsPositive() {
			return apperrors.NewValidationError("coverageAmount", "coverage amount must be greater than zero")
		}
		if cmd.InsuranceType == "" {
			return apperrors.NewValidationError("insuranceType", "insurance type is required")
		}
	case domain.PremiumServices:
		if cmd.TierLevel == "" {
			return apperrors.NewValidationError("tierLevel", "tier level is required")
		}
	}
	return nil
}

func (s *decoratorService) Add(ctx context.Context, sess *domain.Session, cmd domain.NewDecorator) ([]domain.Decorator, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageDecorators); err != nil {
		return nil, err
	}
	if err := validateNewDecorator(cmd); err != nil {
		return nil, err
	}
	client := s.api(sess)
	added, err := client.AddDecorator(ctx, cmd)
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Decorator added", slog.Int64("account_id", cmd.AccountID), slog.Int64("decorator_id", added.ID))
	return client.AccountDecorators(ctx, cmd.AccountID)
}

func (s *decoratorService) Activate(ctx context.Context, sess *domain.Session, accountID, decoratorID int64) ([]domain.Decorator, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageDecorators); err != nil {
		return nil, err
	}
	client := s.api(sess)
	if _, err := client.ActivateDecorator(ctx, decoratorID); err != nil {
		return nil, err
	}
	return client.AccountDecorators(ctx, accountID)
}

func (s *decoratorService) Remove(ctx context.Context, sess *domain.Session, accountID, decoratorID int64) ([]domain.Decorator, error) {
	if err := s.Authorize(ctx, sess, domain.CapManageDecorators); err != nil {
		return nil, err
	}
	client := s.api(sess)
	if err := client.RemoveDecorator(ctx, decoratorID); err != nil {
		return nil, err
	}
	return client.AccountDecorators(ctx, accountID)
}

func (s *decoratorService) ApplyMonthlyFees(ctx context.Context, sess *domain.Session) error {
	if err := s.Authorize(ctx, sess, domain.CapManageDecorators); err != nil {
		return err
	}
	if err := s.api(sess).ApplyMonthlyFees(ctx); err != nil {
		return err
	}
	s.LogInfo(ctx, "Monthly decorator fees applied")
	return nil
}
