package dto

import (
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddDecoratorRequest attaches a feature to an account.
type AddDecoratorRequest struct {
	DecoratorType  domain.DecoratorType `json:"decoratorType" binding:"required"`
	OverdraftLimit *decimal.Decimal     `json:"overdraftLimit" binding:"omitempty,gt=0"`
	CoverageAmount *decimal.Decimal     `json:"coverageAmount" binding:"omitempty,gt=0"`
	InsuranceType  string               `json:"insuranceType"`
	TierLevel      string               `json:"tierLevel"`
	Description    string               `json:"description" binding:"max=255"`
}

// ToDomain converts the request to a decorator command for accountID.
func (r AddDecoratorRequest) ToDomain(accountID int64) domain.NewDecorator {
	return domain.NewDecorator{
		DecoratorType:  r.DecoratorType,
		AccountID:      accountID,
		OverdraftLimit: r.OverdraftLimit,
		CoverageAmount: r.CoverageAmount,
		InsuranceType:  r.InsuranceType,
		TierLevel:      r.TierLevel,
		Description:    r.Description,
	}
}

// DecoratorInfoResponse wraps the free-text decorator catalogue.
type DecoratorInfoResponse struct {
	Info string `json:"info"`
}
