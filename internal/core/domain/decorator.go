package domain

import "github.com/shopspring/decimal"

// DecoratorType is an optional feature that can be attached to an account.
type DecoratorType string

const (
	OverdraftProtection DecoratorType = "OVERDRAFT_PROTECTION"
	Insurance           DecoratorType = "INSURANCE"
	PremiumServices     DecoratorType = "PREMIUM_SERVICES"
)

// Valid reports whether t is a known decorator type.
func (t DecoratorType) Valid() bool {
	switch t {
	case OverdraftProtection, Insurance, PremiumServices:
		return true
	}
	return false
}

// Decorator is a feature add-on attached to an account.
type Decorator struct {
	ID             int64           `json:"id"`
	AccountID      int64           `json:"accountId,omitempty"`
	DecoratorName  string          `json:"decoratorName"`
	DecoratorType  DecoratorType   `json:"decoratorType,omitempty"`
	Description    string          `json:"description,omitempty"`
	MonthlyFee     decimal.Decimal `json:"monthlyFee"`
	IsActive       bool            `json:"isActive"`
	OverdraftLimit decimal.Decimal `json:"overdraftLimit"`
	CoverageAmount decimal.Decimal `json:"coverageAmount"`
	InsuranceType  string          `json:"insuranceType,omitempty"`
	TierLevel      string          `json:"tierLevel,omitempty"`
	ActivatedAt    Timestamp       `json:"activatedAt"`
	DeactivatedAt  Timestamp       `json:"deactivatedAt"`
}
