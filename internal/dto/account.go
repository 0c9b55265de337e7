package dto

import (
	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CHECKING LOAN INVESTMENT BUSINESS"`
	UserID         int64              `json:"userId" binding:"required,gt=0"`
	InitialBalance decimal.Decimal    `json:"initialBalance" binding:"gte=0"`
	InterestRate   *decimal.Decimal   `json:"interestRate" binding:"omitempty,gte=0"`
	OverdraftLimit *decimal.Decimal   `json:"overdraftLimit" binding:"omitempty,gte=0"`
	MinimumBalance *decimal.Decimal   `json:"minimumBalance" binding:"omitempty,gte=0"`
}

// ToDomain converts the request to an account command.
func (r CreateAccountRequest) ToDomain() domain.NewAccount {
	return domain.NewAccount{
		AccountType:    r.AccountType,
		UserID:         r.UserID,
		InitialBalance: r.InitialBalance,
		InterestRate:   r.InterestRate,
		OverdraftLimit: r.OverdraftLimit,
		MinimumBalance: r.MinimumBalance,
	}
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	InterestRate   *decimal.Decimal `json:"interestRate" binding:"omitempty,gte=0"`
	OverdraftLimit *decimal.Decimal `json:"overdraftLimit" binding:"omitempty,gte=0"`
	MinimumBalance *decimal.Decimal `json:"minimumBalance" binding:"omitempty,gte=0"`
}

// ToDomain converts the request to an account update.
func (r UpdateAccountRequest) ToDomain() domain.AccountUpdate {
	return domain.AccountUpdate{
		InterestRate:   r.InterestRate,
		OverdraftLimit: r.OverdraftLimit,
		MinimumBalance: r.MinimumBalance,
	}
}

// SetStatusRequest changes the status of an account or group.
type SetStatusRequest struct {
	Status domain.AccountStatus `json:"status" binding:"required,oneof=ACTIVE FROZEN SUSPENDED CLOSED PENDING"`
}

// AccountExistsResponse answers an account number lookup.
type AccountExistsResponse struct {
	AccountNumber string `json:"accountNumber"`
	Exists        bool   `json:"exists"`
}

// AmountResponse carries a single money figure.
type AmountResponse struct {
	Amount decimal.Decimal `json:"amount"`
}
