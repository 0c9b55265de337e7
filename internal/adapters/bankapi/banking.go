package bankapi

import (
	"context"

	"github.com/SscSPs/bank_portal/internal/core/domain"
	"github.com/SscSPs/bank_portal/internal/core/ports/gateways"
)

func (c *Client) OpenAccount(ctx context.Context, cmd domain.NewAccount) (*domain.AccountOpening, error) {
	var opening domain.AccountOpening
	if err := c.post(ctx, "/banking/accounts/open", nil, cmd, &opening); err != nil {
		return nil, err
	}
	return &opening, nil
}

func (c *Client) Deposit(ctx context.Context, cmd domain.CashCommand) (*domain.CashReceipt, error) {
	var receipt domain.CashReceipt
	if err := c.post(ctx, "/banking/deposit", nil, cmd, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) Withdraw(ctx context.Context, cmd domain.CashCommand) (*domain.CashReceipt, error) {
	var receipt domain.CashReceipt
	if err := c.post(ctx, "/banking/withdraw", nil, cmd, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *Client) AccountSummary(ctx context.Context, accountNumber string) (*domain.AccountSummary, error) {
	var summary domain.AccountSummary
	if err := c.get(ctx, "/banking/accounts/"+accountNumber+"/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) UserSummary(ctx context.Context, userID int64) (*domain.UserSummary, error) {
	var summary domain.UserSummary
	if err := c.get(ctx, "/banking/users/"+pathID(userID)+"/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *Client) ProcessPayment(ctx context.Context, cmd domain.PaymentCommand) (*domain.PaymentReceipt, error) {
	var receipt domain.PaymentReceipt
	if err := c.post(ctx, "/payments/process", nil, cmd, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

var _ gateways.BankAPI = (*Client)(nil)
